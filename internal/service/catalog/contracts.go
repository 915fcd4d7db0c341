package catalog

import (
	"context"

	"github.com/om-engineers/OME-BookingService/internal/domain"
)

// CatalogRepository интерфейс каталога услуг
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ServiceOffering, error)
	List(ctx context.Context, category domain.ServiceCategory, query string) ([]*domain.ServiceOffering, error)
	Categories(ctx context.Context) ([]domain.ServiceCategory, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
