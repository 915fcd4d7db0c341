package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/om-engineers/OME-BookingService/internal/api/handlers"
	"github.com/om-engineers/OME-BookingService/internal/domain"
	getAvailableSlots "github.com/om-engineers/OME-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "date query parameter is required"
	msgInvalidDate     = "invalid date, expected YYYY-MM-DD"
	msgInvalidSlotSize = "invalid slotSize, expected a number of minutes"
	msgInvalidRequest  = "invalid slot request parameters"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD&slotSize=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawDate := query.Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slotSize := 0
	if rawSlotSize := query.Get("slotSize"); rawSlotSize != "" {
		slotSize, err = strconv.Atoi(rawSlotSize)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid slotSize: %q", rawSlotSize)
			handlers.RespondBadRequest(w, msgInvalidSlotSize)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:            date,
		SlotSizeMinutes: slotSize,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrValidation):
			h.logger.Warn("GET /slots - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /slots - Returned %d available slots for %s", response.Total, rawDate)
	handlers.RespondJSON(w, http.StatusOK, response)
}
