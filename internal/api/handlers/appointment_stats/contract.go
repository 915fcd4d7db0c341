package appointment_stats

import (
	"context"

	"github.com/om-engineers/OME-BookingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	Statistics(ctx context.Context) (*models.StatisticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
