package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/om-engineers/OME-BookingService/internal/api/handlers"
	"github.com/om-engineers/OME-BookingService/internal/api/middleware"
	appointmentsService "github.com/om-engineers/OME-BookingService/internal/service/appointments"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgMissingAppointmentID = "appointment id is required"
	msgAppointmentNotFound  = "appointment not found"
	msgCannotCancel         = "appointment cannot be cancelled in its current status"
	msgInvalidReason        = "invalid cancellation reason"
	msgUnauthorized         = "staff identification required"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{appointmentId}/cancel - Missing staff id in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("PATCH /appointments/{appointmentId}/cancel - Missing appointment id")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{appointmentId}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), appointmentID, req.ToServiceRequest(staffID))
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{appointmentId}/cancel - Not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{appointmentId}/cancel - Cannot cancel: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{appointmentId}/cancel - Invalid reason: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidReason)

		default:
			h.logger.Error("PATCH /appointments/{appointmentId}/cancel - Failed: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{appointmentId}/cancel - Appointment %s cancelled by staff=%s",
		appointmentID, staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
