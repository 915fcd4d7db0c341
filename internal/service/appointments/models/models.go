package models

import (
	"errors"
	"time"

	"github.com/om-engineers/OME-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidKind возвращается при некорректном типе заявки
	ErrInvalidKind = errors.New("invalid appointment kind")
)

// Request модели

// ListAppointmentsRequest запрос на выборку заявок для дашборда
type ListAppointmentsRequest struct {
	Status    *string    `json:"status,omitempty"`
	Kind      *string    `json:"kind,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, err := domain.ParseStatus(*r.Status)
		if err != nil {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	if r.Kind != nil {
		kind, err := domain.ParseKind(*r.Kind)
		if err != nil {
			return filter, ErrInvalidKind
		}
		filter.Kind = &kind
	}

	return filter, nil
}

// TransitionRequest запрос на перевод заявки в целевой статус
type TransitionRequest struct {
	StaffID string `json:"staffId"`
	Status  string `json:"status"`

	// Данные завершения (используются только при переходе в completed)
	ActualCost      string `json:"actualCost,omitempty"`
	TechnicianNotes string `json:"technicianNotes,omitempty"`
}

// CancelRequest запрос на отмену заявки
type CancelRequest struct {
	StaffID string `json:"staffId"`
	Reason  string `json:"reason"`
}

// RescheduleRequest запрос на перенос запрошенных даты и времени
type RescheduleRequest struct {
	StaffID string `json:"staffId"`
	Date    string `json:"date"` // "2025-10-15"
	Time    string `json:"time"` // "10:00"
}

// Response модели

// AppointmentResponse ответ с данными заявки
type AppointmentResponse struct {
	ID        string `json:"id"`
	ContactID string `json:"contactId"`
	ServiceID string `json:"serviceId"`
	Kind      string `json:"kind"`

	Date            string  `json:"date,omitempty"`      // "2025-10-15"
	StartTime       *string `json:"startTime,omitempty"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`

	Status  string `json:"status"`
	Notes   string `json:"notes,omitempty"`
	Address string `json:"address,omitempty"`

	EstimatedCost   string `json:"estimatedCost,omitempty"`
	ActualCost      string `json:"actualCost,omitempty"`
	TechnicianNotes string `json:"technicianNotes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601
	CompletedAt        *string `json:"completedAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactResponse контакт клиента в развёрнутом ответе
type ContactResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
}

// ServiceSummary краткие данные услуги в развёрнутом ответе
type ServiceSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// AppointmentDetailResponse заявка с развёрнутыми контактом и услугой
type AppointmentDetailResponse struct {
	AppointmentResponse
	Contact *ContactResponse `json:"contact,omitempty"`
	Service *ServiceSummary  `json:"service,omitempty"`
}

// AppointmentListResponse ответ со списком заявок
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// StatisticsResponse сводка по заявкам для дашборда
type StatisticsResponse struct {
	Total          int     `json:"total"`
	Pending        int     `json:"pending"`
	Confirmed      int     `json:"confirmed"`
	InProgress     int     `json:"inProgress"`
	Completed      int     `json:"completed"`
	Cancelled      int     `json:"cancelled"`
	CompletionRate float64 `json:"completionRate"` // Процент завершённых, 0-100
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		ContactID:          a.ContactID,
		ServiceID:          a.ServiceID,
		Kind:               string(a.Kind),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		Notes:              a.Notes,
		Address:            a.Address,
		EstimatedCost:      a.EstimatedCost,
		ActualCost:         a.ActualCost,
		TechnicianNotes:    a.TechnicianNotes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if !a.Date.IsZero() {
		resp.Date = a.Date.Format(domain.DateFormat)
	}
	if a.StartTime != nil {
		startTime := a.StartTime.String()
		resp.StartTime = &startTime
	}
	if a.CancelledAt != nil {
		cancelled := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}
	if a.CompletedAt != nil {
		completed := a.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completed
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if dto := FromDomainAppointment(a); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}
	resp.Total = len(resp.Appointments)

	return resp
}

// FromDomainContact конвертирует контакт в DTO развёрнутого ответа
func FromDomainContact(c *domain.Contact) *ContactResponse {
	if c == nil {
		return nil
	}
	return &ContactResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
}

// FromDomainServiceSummary конвертирует услугу в краткое DTO
func FromDomainServiceSummary(s *domain.ServiceOffering) *ServiceSummary {
	if s == nil {
		return nil
	}
	return &ServiceSummary{
		ID:       s.ID,
		Name:     s.Name,
		Category: string(s.Category),
	}
}

// FromStatusCounts строит сводку из количеств по статусам
func FromStatusCounts(counts map[domain.AppointmentStatus]int) *StatisticsResponse {
	resp := &StatisticsResponse{
		Pending:    counts[domain.StatusPending],
		Confirmed:  counts[domain.StatusConfirmed],
		InProgress: counts[domain.StatusInProgress],
		Completed:  counts[domain.StatusCompleted],
		Cancelled:  counts[domain.StatusCancelled],
	}
	resp.Total = resp.Pending + resp.Confirmed + resp.InProgress + resp.Completed + resp.Cancelled

	if resp.Total > 0 {
		resp.CompletionRate = float64(resp.Completed) / float64(resp.Total) * 100
	}

	return resp
}
