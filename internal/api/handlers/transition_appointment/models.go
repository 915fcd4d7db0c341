package transition_appointment

import "github.com/om-engineers/OME-BookingService/internal/service/appointments/models"

// TransitionAppointmentRequest HTTP request model
type TransitionAppointmentRequest struct {
	Status string `json:"status"`

	// Заполняются только при переводе в completed
	ActualCost      string `json:"actualCost,omitempty"`
	TechnicianNotes string `json:"technicianNotes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *TransitionAppointmentRequest) ToServiceRequest(staffID string) *models.TransitionRequest {
	return &models.TransitionRequest{
		StaffID:         staffID,
		Status:          r.Status,
		ActualCost:      r.ActualCost,
		TechnicianNotes: r.TechnicianNotes,
	}
}
