package contact

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/om-engineers/OME-BookingService/internal/domain"
)

// Repository in-memory справочник контактов
//
// Дедупликация выполняется по нормализованному номеру телефона.
// Upsert (поиск + создание/обновление) выполняется под одной эксклюзивной
// блокировкой, поэтому два конкурентных запроса с одним номером не могут
// создать два контакта.
type Repository struct {
	mu      sync.RWMutex
	items   map[string]*domain.Contact
	byPhone map[string]string // нормализованный телефон → ID
	order   []string          // ID в порядке создания
}

// NewRepository создает новый экземпляр справочника контактов
func NewRepository() *Repository {
	return &Repository{
		items:   make(map[string]*domain.Contact),
		byPhone: make(map[string]string),
	}
}

// Upsert создает контакт или обновляет существующий (поиск по телефону)
// Непустые входные поля перезаписывают сохранённые (last-write-wins)
// Возвращает контакт и признак того, что он был создан
func (r *Repository) Upsert(_ context.Context, incoming *domain.Contact) (*domain.Contact, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	phoneKey := domain.NormalizePhone(incoming.Phone)

	if id, ok := r.byPhone[phoneKey]; ok {
		stored := r.items[id]
		if incoming.Name != "" {
			stored.Name = incoming.Name
		}
		if incoming.Email != "" {
			stored.Email = incoming.Email
		}
		if incoming.Address != "" {
			stored.Address = incoming.Address
		}
		if incoming.Phone != "" {
			stored.Phone = incoming.Phone
		}
		stored.UpdatedAt = now

		result := *stored
		return &result, false, nil
	}

	stored := *incoming
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.items[stored.ID] = &stored
	r.byPhone[phoneKey] = stored.ID
	r.order = append(r.order, stored.ID)

	result := stored
	return &result, true, nil
}

// GetByID получает контакт по ID
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, ErrContactNotFound
	}

	result := *stored
	return &result, nil
}

// GetByPhone получает контакт по номеру телефона (сравнение нормализованных форм)
func (r *Repository) GetByPhone(_ context.Context, phone string) (*domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPhone[domain.NormalizePhone(phone)]
	if !ok {
		return nil, ErrContactNotFound
	}

	result := *r.items[id]
	return &result, nil
}

// List возвращает все контакты в порядке создания
func (r *Repository) List(_ context.Context) ([]*domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Contact, 0, len(r.order))
	for _, id := range r.order {
		stored := *r.items[id]
		result = append(result, &stored)
	}

	return result, nil
}

// Search ищет контакты по имени, email или телефону (подстрока, без регистра).
// Телефоны сравниваются в нормализованном виде, как и при дедупликации в Upsert
func (r *Repository) Search(_ context.Context, query string) ([]*domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	qPhone := domain.NormalizePhone(query)

	result := make([]*domain.Contact, 0)
	for _, id := range r.order {
		stored := r.items[id]
		if q == "" ||
			strings.Contains(strings.ToLower(stored.Name), q) ||
			strings.Contains(strings.ToLower(stored.Email), q) ||
			(qPhone != "" && strings.Contains(domain.NormalizePhone(stored.Phone), qPhone)) {
			contact := *stored
			result = append(result, &contact)
		}
	}

	return result, nil
}

// Len возвращает количество контактов (для метрик)
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
