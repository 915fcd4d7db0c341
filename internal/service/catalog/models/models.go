package models

import (
	"time"

	"github.com/om-engineers/OME-BookingService/internal/domain"
)

// ListServicesRequest запрос на листинг каталога
type ListServicesRequest struct {
	Category string // Фильтр по категории (опционально, пустая строка — без фильтра)
	Query    string // Поиск по подстроке в названии/описании (опционально)
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	DurationMinMinutes int     `json:"durationMinMinutes"`
	DurationMaxMinutes int     `json:"durationMaxMinutes"`
	PriceMin           float64 `json:"priceMin"`
	PriceMax           float64 `json:"priceMax"`
	Icon               string  `json:"icon"`
	IsActive           bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг и категориями для фильтра
type ServiceListResponse struct {
	Services   []ServiceResponse `json:"services"`
	Categories []string          `json:"categories"`
	Total      int               `json:"total"`
}

// CategoriesResponse ответ со списком категорий
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.ServiceOffering) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Description:        s.Description,
		Category:           string(s.Category),
		DurationMinMinutes: s.DurationMinMinutes,
		DurationMaxMinutes: s.DurationMaxMinutes,
		PriceMin:           s.PriceMin,
		PriceMax:           s.PriceMax,
		Icon:               s.Icon,
		IsActive:           s.IsActive,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список услуг и категорий в DTO
func FromDomainServiceList(services []*domain.ServiceOffering, categories []domain.ServiceCategory) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services:   make([]ServiceResponse, 0, len(services)),
		Categories: make([]string, 0, len(categories)),
	}

	for _, s := range services {
		if dto := FromDomainService(s); dto != nil {
			resp.Services = append(resp.Services, *dto)
		}
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, string(c))
	}
	resp.Total = len(resp.Services)

	return resp
}
