package appointments

import (
	"context"
	"time"

	"github.com/om-engineers/OME-BookingService/internal/domain"
	"github.com/om-engineers/OME-BookingService/pkg/types"
)

// AppointmentRepository интерфейс репозитория заявок
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Transition(ctx context.Context, id string, target domain.AppointmentStatus) (*domain.Appointment, error)
	Cancel(ctx context.Context, id string, reason string) (*domain.Appointment, error)
	Complete(ctx context.Context, id string, actualCost, technicianNotes string) (*domain.Appointment, error)
	Reschedule(ctx context.Context, id string, date time.Time, startTime types.TimeString) (*domain.Appointment, error)
	CountByStatus(ctx context.Context) (map[domain.AppointmentStatus]int, error)
}

// ContactRepository интерфейс справочника контактов
type ContactRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
}

// CatalogRepository интерфейс каталога услуг
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ServiceOffering, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
