package reschedule_appointment

import "github.com/om-engineers/OME-BookingService/internal/service/appointments/models"

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	Date string `json:"date"` // "2025-10-15"
	Time string `json:"time"` // "10:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RescheduleAppointmentRequest) ToServiceRequest(staffID string) *models.RescheduleRequest {
	return &models.RescheduleRequest{
		StaffID: staffID,
		Date:    r.Date,
		Time:    r.Time,
	}
}
