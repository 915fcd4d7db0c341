package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда заявка не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("appointment.repository: invalid status transition")

	// ErrCannotReschedule возвращается, когда перенос заявки невозможен в текущем статусе
	ErrCannotReschedule = errors.New("appointment.repository: appointment cannot be rescheduled")
)
