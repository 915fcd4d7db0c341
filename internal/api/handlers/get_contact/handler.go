package get_contact

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/om-engineers/OME-BookingService/internal/api/handlers"
	contactsService "github.com/om-engineers/OME-BookingService/internal/service/contacts"
)

const (
	msgMissingContactID = "contact id is required"
	msgContactNotFound  = "contact not found"
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

// Handle GET /api/v1/contacts/{contactId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	contactID := mux.Vars(r)["contactId"]
	if contactID == "" {
		h.logger.Warn("GET /contacts/{contactId} - Missing contact id")
		handlers.RespondBadRequest(w, msgMissingContactID)
		return
	}

	result, err := h.service.GetByID(r.Context(), contactID)
	if err != nil {
		switch {
		case errors.Is(err, contactsService.ErrContactNotFound):
			h.logger.Warn("GET /contacts/{contactId} - Not found: contact_id=%s", contactID)
			handlers.RespondNotFound(w, msgContactNotFound)

		default:
			h.logger.Error("GET /contacts/{contactId} - Failed to get contact: contact_id=%s, error=%v",
				contactID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /contacts/{contactId} - Contact retrieved: contact_id=%s", contactID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
