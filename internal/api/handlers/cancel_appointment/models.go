package cancel_appointment

import "github.com/om-engineers/OME-BookingService/internal/service/appointments/models"

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(staffID string) *models.CancelRequest {
	return &models.CancelRequest{
		StaffID: staffID,
		Reason:  r.Reason,
	}
}
