package reschedule_appointment

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
	msgCannotReschedule     = "only pending and confirmed appointments can be rescheduled"
	msgInvalidDateOrTime    = "invalid date or time, expected YYYY-MM-DD and HH:MM"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{appointmentId}/reschedule - Missing staff id in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("PATCH /appointments/{appointmentId}/reschedule - Missing appointment id")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{appointmentId}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Reschedule(r.Context(), appointmentID, req.ToServiceRequest(staffID))
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{appointmentId}/reschedule - Not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrCannotReschedule):
			h.logger.Warn("PATCH /appointments/{appointmentId}/reschedule - Cannot reschedule: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgCannotReschedule)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{appointmentId}/reschedule - Invalid date/time: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		default:
			h.logger.Error("PATCH /appointments/{appointmentId}/reschedule - Failed: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{appointmentId}/reschedule - Appointment %s rescheduled to %s %s by staff=%s",
		appointmentID, req.Date, req.Time, staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
