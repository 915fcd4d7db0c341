package create_quotation

import (
	"errors"
	"net/http"

	"github.com/om-engineers/OME-BookingService/internal/api/handlers"
	submitRequest "github.com/om-engineers/OME-BookingService/internal/usecase/submit_request"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDateOrTime   = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgValidationFailed    = "missing or invalid quotation fields"
	msgServiceNotFound     = "service not found"
	msgServiceInactive     = "service is currently unavailable"
	msgDateInPast          = "preferred date must not be in the past"
	msgDateTooFar          = "preferred date is too far in the future"
	msgOutsideWorkingHours = "preferred time is outside working hours"
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

// Handle POST /api/v1/quotations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateQuotationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitRequest.ErrValidation):
			h.logger.Warn("POST /quotations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, submitRequest.ErrServiceNotFound):
			h.logger.Warn("POST /quotations - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, submitRequest.ErrServiceInactive):
			h.logger.Warn("POST /quotations - Service inactive: service_id=%s", req.ServiceID)
			handlers.RespondError(w, http.StatusConflict, msgServiceInactive)

		case errors.Is(err, submitRequest.ErrInvalidDate):
			h.logger.Warn("POST /quotations - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, submitRequest.ErrDateTooFarInFuture):
			h.logger.Warn("POST /quotations - Date too far in future: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, submitRequest.ErrOutsideWorkingHours):
			h.logger.Warn("POST /quotations - Outside working hours: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		default:
			h.logger.Error("POST /quotations - Failed to create quotation: service_id=%s, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /quotations - Quotation created successfully: appointment_id=%s, contact_id=%s",
		result.ID, result.ContactID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
