package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/om-engineers/OME-BookingService/internal/domain"
)

// Repository in-memory каталог услуг
//
// Каталог засеивается один раз при старте процесса и дальше только читается.
// ID стабильны в пределах жизни процесса. Listing сохраняет порядок засева.
type Repository struct {
	mu    sync.RWMutex
	items map[string]*domain.ServiceOffering
	order []string // ID в порядке засева
}

// NewRepository создает пустой каталог услуг
func NewRepository() *Repository {
	return &Repository{
		items: make(map[string]*domain.ServiceOffering),
	}
}

// Seed наполняет каталог услугами, присваивая ID и время создания
// Порядок offerings определяет порядок выдачи List
func (r *Repository) Seed(_ context.Context, offerings []domain.ServiceOffering) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, offering := range offerings {
		stored := offering
		stored.ID = uuid.NewString()
		stored.CreatedAt = now
		stored.UpdatedAt = now

		r.items[stored.ID] = &stored
		r.order = append(r.order, stored.ID)
	}

	return nil
}

// GetByID получает услугу по ID
// Неактивные услуги также разрешаются — они нужны для отображения
// исторических заявок
func (r *Repository) GetByID(_ context.Context, id string) (*domain.ServiceOffering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, ErrServiceNotFound
	}

	result := *stored
	return &result, nil
}

// List возвращает активные услуги в порядке засева
// category фильтрует по категории, query — подстрока в названии/описании
func (r *Repository) List(_ context.Context, category domain.ServiceCategory, query string) ([]*domain.ServiceOffering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.ServiceOffering, 0)
	for _, id := range r.order {
		stored := r.items[id]
		if !stored.IsActive {
			continue
		}
		if !stored.MatchesCategory(category) {
			continue
		}
		if !stored.MatchesQuery(query) {
			continue
		}
		offering := *stored
		result = append(result, &offering)
	}

	return result, nil
}

// Categories возвращает отсортированный список категорий активных услуг
func (r *Repository) Categories(_ context.Context) ([]domain.ServiceCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[domain.ServiceCategory]bool)
	categories := make([]domain.ServiceCategory, 0)
	for _, id := range r.order {
		stored := r.items[id]
		if !stored.IsActive || seen[stored.Category] {
			continue
		}
		seen[stored.Category] = true
		categories = append(categories, stored.Category)
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i] < categories[j]
	})

	return categories, nil
}

// Len возвращает количество услуг в каталоге (для метрик)
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
