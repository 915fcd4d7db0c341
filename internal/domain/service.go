package domain

import (
	"strings"
	"time"
)

// ServiceCategory категория услуги
// Открытое множество: константы ниже покрывают текущий каталог,
// но тип допускает новые категории без изменения кода
type ServiceCategory string

const (
	CategoryElectrical  ServiceCategory = "Electrical"
	CategoryPlumbing    ServiceCategory = "Plumbing"
	CategoryHVAC        ServiceCategory = "HVAC"
	CategoryAppliance   ServiceCategory = "Appliance"
	CategoryCarpentry   ServiceCategory = "Carpentry"
	CategoryPainting    ServiceCategory = "Painting"
	CategoryCleaning    ServiceCategory = "Cleaning"
	CategoryPestControl ServiceCategory = "PestControl"
)

// ServiceOffering услуга из каталога ремонтных работ
type ServiceOffering struct {
	ID          string
	Name        string
	Description string
	Category    ServiceCategory

	// Оценка длительности работ в минутах (нижняя и верхняя границы)
	DurationMinMinutes int
	DurationMaxMinutes int

	// Диапазон стоимости в рупиях
	PriceMin float64
	PriceMax float64

	Icon     string
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MatchesQuery возвращает true, если название или описание услуги
// содержит query (без учёта регистра)
func (s *ServiceOffering) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Name), q) ||
		strings.Contains(strings.ToLower(s.Description), q)
}

// MatchesCategory возвращает true, если услуга относится к категории
// Сравнение без учёта регистра
func (s *ServiceOffering) MatchesCategory(category ServiceCategory) bool {
	if category == "" {
		return true
	}
	return strings.EqualFold(string(s.Category), string(category))
}
