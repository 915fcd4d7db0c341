package create_booking

import (
	"errors"
	"net/http"

	"github.com/om-engineers/OME-BookingService/internal/api/handlers"
	submitRequest "github.com/om-engineers/OME-BookingService/internal/usecase/submit_request"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDateOrTime   = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgValidationFailed    = "missing or invalid booking fields"
	msgServiceNotFound     = "service not found"
	msgServiceInactive     = "service is currently unavailable"
	msgDateInPast          = "booking date must not be in the past"
	msgDateTooFar          = "booking date is too far in the future"
	msgOutsideWorkingHours = "requested time is outside working hours"
)

type Handler struct {
	useCase SubmitRequestUseCase
	logger  Logger
}

func NewHandler(useCase SubmitRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitRequest.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, submitRequest.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, submitRequest.ErrServiceInactive):
			h.logger.Warn("POST /bookings - Service inactive: service_id=%s", req.ServiceID)
			handlers.RespondError(w, http.StatusConflict, msgServiceInactive)

		case errors.Is(err, submitRequest.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, submitRequest.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, submitRequest.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service_id=%s, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: appointment_id=%s, contact_id=%s",
		result.ID, result.ContactID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
