package contacts

import (
	"context"

	"github.com/om-engineers/OME-BookingService/internal/domain"
)

// ContactRepository интерфейс справочника контактов
type ContactRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	Search(ctx context.Context, query string) ([]*domain.Contact, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
