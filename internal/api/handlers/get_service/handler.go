package get_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/om-engineers/OME-BookingService/internal/api/handlers"
	catalogService "github.com/om-engineers/OME-BookingService/internal/service/catalog"
)

const (
	msgMissingServiceID = "service id is required"
	msgServiceNotFound  = "service not found"
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

// Handle GET /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]
	if serviceID == "" {
		h.logger.Warn("GET /services/{serviceId} - Missing service id")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	result, err := h.service.GetByID(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("GET /services/{serviceId} - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /services/{serviceId} - Failed to get service: service_id=%s, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{serviceId} - Service retrieved: service_id=%s", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
