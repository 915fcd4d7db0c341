package create_quotation

import (
	"time"

	"github.com/om-engineers/OME-BookingService/internal/domain"
	submitRequest "github.com/om-engineers/OME-BookingService/internal/usecase/submit_request"
	"github.com/om-engineers/OME-BookingService/pkg/types"
)

// CreateQuotationRequest HTTP request model
// Дата и время опциональны: смета без слота — запрос на выезд мастера
type CreateQuotationRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	ServiceID   string `json:"serviceId"`
	Date        string `json:"date,omitempty"` // "2025-10-15"
	Time        string `json:"time,omitempty"` // "10:00"
	Description string `json:"description"`
}

// QuotationResponse HTTP response model
type QuotationResponse struct {
	ID              string  `json:"id"`
	ContactID       string  `json:"contactId"`
	ServiceID       string  `json:"serviceId"`
	Kind            string  `json:"kind"`
	Status          string  `json:"status"`
	Date            string  `json:"date,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     string  `json:"description"`
	Address         string  `json:"address"`
	ContactCreated  bool    `json:"contactCreated"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateQuotationRequest) ToUseCaseRequest() (*submitRequest.Request, error) {
	req := &submitRequest.Request{
		Kind:      domain.KindQuotation,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
		ServiceID: r.ServiceID,
		Notes:     r.Description,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if r.Time != "" {
		startTime, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitRequest.Response) *QuotationResponse {
	out := &QuotationResponse{
		ID:              resp.ID,
		ContactID:       resp.ContactID,
		ServiceID:       resp.ServiceID,
		Kind:            string(resp.Kind),
		Status:          string(resp.Status),
		DurationMinutes: resp.DurationMinutes,
		Description:     resp.Notes,
		Address:         resp.Address,
		ContactCreated:  resp.ContactCreated,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}

	if !resp.Date.IsZero() {
		out.Date = resp.Date.Format(domain.DateFormat)
	}
	if resp.StartTime != nil {
		startTime := resp.StartTime.String()
		out.StartTime = &startTime
	}

	return out
}
