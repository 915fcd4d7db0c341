package appointment_stats

import (
	"net/http"

	"github.com/om-engineers/OME-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/appointments/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Statistics(r.Context())
	if err != nil {
		h.logger.Error("GET /appointments/stats - Failed to get statistics: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/stats - Statistics retrieved: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
