package search_contacts

import (
	"net/http"

	"github.com/om-engineers/OME-BookingService/internal/api/handlers"
)

type Handler struct {
	service ContactsService
	logger  Logger
}

func NewHandler(service ContactsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/contacts?query=sharma
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	result, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.logger.Error("GET /contacts - Failed to search contacts: query=%q, error=%v", query, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /contacts - Returned %d contacts for query=%q", result.Total, query)
	handlers.RespondJSON(w, http.StatusOK, result)
}
