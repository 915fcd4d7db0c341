package reschedule_appointment

import (
	"context"

	"github.com/om-engineers/OME-BookingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	Reschedule(ctx context.Context, id string, req *models.RescheduleRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
