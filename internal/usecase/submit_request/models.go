package submit_request

import (
	"time"

	"github.com/om-engineers/OME-BookingService/internal/domain"
	"github.com/om-engineers/OME-BookingService/pkg/types"
)

// Request модель заявки с публичной формы (бронирование или запрос сметы)
type Request struct {
	Kind domain.AppointmentKind

	// Поля контакта
	Name    string
	Phone   string
	Email   string
	Address string

	ServiceID string

	// Запрошенные дата и время
	// Для бронирования обязательны; для сметы опциональны —
	// смета без конкретного времени не занимает слот
	Date      time.Time
	StartTime *types.TimeString

	Notes string
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID        string                 // ID созданной заявки
	ContactID string                 // ID контакта (созданного или обновлённого)
	ServiceID string                 // ID услуги
	Kind      domain.AppointmentKind // Тип заявки
	Status    domain.AppointmentStatus

	Date            time.Time
	StartTime       *types.TimeString
	DurationMinutes int
	Notes           string
	Address         string

	// Признак того, что контакт был создан, а не обновлён
	ContactCreated bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
