package list_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/om-engineers/OME-BookingService/internal/api/handlers"
	"github.com/om-engineers/OME-BookingService/internal/domain"
	appointmentsService "github.com/om-engineers/OME-BookingService/internal/service/appointments"
	"github.com/om-engineers/OME-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidDate   = "invalid date filter, expected YYYY-MM-DD"
	msgInvalidFilter = "invalid filter parameters"
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

// Handle GET /api/v1/appointments?status=pending&kind=booking&startDate=...&endDate=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListAppointmentsRequest{}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if kind := query.Get("kind"); kind != "" {
		req.Kind = &kind
	}
	if rawStart := query.Get("startDate"); rawStart != "" {
		startDate, err := time.Parse(domain.DateFormat, rawStart)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid startDate: %q", rawStart)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}
	if rawEnd := query.Get("endDate"); rawEnd != "" {
		endDate, err := time.Parse(domain.DateFormat, rawEnd)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid endDate: %q", rawEnd)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Returned %d appointments", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
