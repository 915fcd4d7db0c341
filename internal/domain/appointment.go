package domain

import (
	"fmt"
	"time"

	"github.com/om-engineers/OME-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// AppointmentKind represents the kind of an appointment request
type AppointmentKind string

const (
	KindBooking   AppointmentKind = "booking"
	KindQuotation AppointmentKind = "quotation"
)

// ParseStatus валидирует строку и конвертирует её в AppointmentStatus
func ParseStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown appointment status: %q", s)
	}
}

// ParseKind валидирует строку и конвертирует её в AppointmentKind
func ParseKind(s string) (AppointmentKind, error) {
	switch AppointmentKind(s) {
	case KindBooking, KindQuotation:
		return AppointmentKind(s), nil
	default:
		return "", fmt.Errorf("unknown appointment kind: %q", s)
	}
}

// allowedTransitions таблица допустимых переходов статусов
// Линейный жизненный цикл pending → confirmed → in_progress → completed,
// отмена возможна из любого нетерминального статуса
var allowedTransitions = map[AppointmentStatus]map[AppointmentStatus]bool{
	StatusPending:    {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed:  {StatusInProgress: true, StatusCancelled: true},
	StatusInProgress: {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition возвращает true, если переход from → to допустим
func CanTransition(from, to AppointmentStatus) bool {
	targets, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return targets[to]
}

// Appointment заявка на выезд: бронирование услуги или запрос сметы
type Appointment struct {
	ID        string
	ContactID string
	ServiceID string
	Kind      AppointmentKind

	// Запрошенные дата и время
	// StartTime == nil для запросов сметы без конкретного желаемого времени;
	// такие заявки не занимают слоты в расписании
	Date            time.Time
	StartTime       *types.TimeString
	DurationMinutes int

	Status  AppointmentStatus
	Notes   string
	Address string // Переопределение адреса контакта для конкретного выезда

	EstimatedCost   string
	ActualCost      string
	TechnicianNotes string

	CancellationReason *string
	CancelledAt        *time.Time
	CompletedAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsTerminal returns true if no further status transitions are possible
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return CanTransition(a.Status, StatusCancelled)
}

// CanBeRescheduled returns true if the requested date/time can still be changed
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// HasRequestedTime returns true if a concrete start time was requested
func (a *Appointment) HasRequestedTime() bool {
	return a.StartTime != nil
}

// OccursOn returns true if the appointment is requested for the given date
func (a *Appointment) OccursOn(date time.Time) bool {
	if a.Date.IsZero() {
		return false
	}
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AppointmentsFilter фильтр для выборки заявок
type AppointmentsFilter struct {
	Status    *AppointmentStatus // Фильтр по статусу (опционально)
	Kind      *AppointmentKind   // Фильтр по типу заявки (опционально)
	StartDate *time.Time         // Начало периода по запрошенной дате (опционально)
	EndDate   *time.Time         // Конец периода по запрошенной дате (опционально)
	ContactID *string            // Фильтр по контакту (опционально)
}
