package transition_appointment

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
	msgInvalidStatus        = "unknown appointment status"
	msgInvalidTransition    = "transition is not allowed from the current status"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{appointmentId}/status - Missing staff id in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("PATCH /appointments/{appointmentId}/status - Missing appointment id")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	var req TransitionAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{appointmentId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Transition(r.Context(), appointmentID, req.ToServiceRequest(staffID))
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{appointmentId}/status - Not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{appointmentId}/status - Invalid status %q: appointment_id=%s",
				req.Status, appointmentID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointmentsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{appointmentId}/status - Invalid transition to %q: appointment_id=%s",
				req.Status, appointmentID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /appointments/{appointmentId}/status - Failed: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{appointmentId}/status - Appointment %s moved to %s by staff=%s",
		appointmentID, result.Status, staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
