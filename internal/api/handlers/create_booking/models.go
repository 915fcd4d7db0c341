package create_booking

import (
	"time"

	"github.com/om-engineers/OME-BookingService/internal/domain"
	submitRequest "github.com/om-engineers/OME-BookingService/internal/usecase/submit_request"
	"github.com/om-engineers/OME-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address,omitempty"`
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"` // "2025-10-15"
	Time      string `json:"time"` // "10:00"
	Notes     string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	ContactID       string  `json:"contactId"`
	ServiceID       string  `json:"serviceId"`
	Kind            string  `json:"kind"`
	Status          string  `json:"status"`
	Date            string  `json:"date"`
	StartTime       *string `json:"startTime,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Notes           string  `json:"notes,omitempty"`
	Address         string  `json:"address,omitempty"`
	ContactCreated  bool    `json:"contactCreated"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*submitRequest.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &submitRequest.Request{
		Kind:      domain.KindBooking,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
		ServiceID: r.ServiceID,
		Date:      date,
		StartTime: &startTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitRequest.Response) *BookingResponse {
	out := &BookingResponse{
		ID:              resp.ID,
		ContactID:       resp.ContactID,
		ServiceID:       resp.ServiceID,
		Kind:            string(resp.Kind),
		Status:          string(resp.Status),
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Notes:           resp.Notes,
		Address:         resp.Address,
		ContactCreated:  resp.ContactCreated,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.StartTime != nil {
		startTime := resp.StartTime.String()
		out.StartTime = &startTime
	}

	return out
}
