package list_services

import (
	"net/http"

	"github.com/om-engineers/OME-BookingService/internal/api/handlers"
	"github.com/om-engineers/OME-BookingService/internal/service/catalog/models"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services?category=Plumbing&search=leak
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListServicesRequest{
		Category: query.Get("category"),
		Query:    query.Get("search"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Returned %d services", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
