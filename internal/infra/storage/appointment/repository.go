package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/om-engineers/OME-BookingService/internal/domain"
	"github.com/om-engineers/OME-BookingService/pkg/types"
)

// Repository in-memory репозиторий заявок
//
// Все данные живут в памяти процесса. Мутации сериализуются эксклюзивной
// блокировкой, чтения выполняются параллельно под RLock — частично
// применённая запись снаружи не наблюдаема. Проверка допустимости перехода
// статуса выполняется под той же блокировкой, что и сама мутация, поэтому
// конкурирующие переходы не могут нарушить таблицу переходов.
type Repository struct {
	mu    sync.RWMutex
	items map[string]*domain.Appointment
	order []string // ID в порядке создания
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository() *Repository {
	return &Repository{
		items: make(map[string]*domain.Appointment),
	}
}

// Create создает новую заявку: присваивает ID и штампует время создания
// Статус всегда выставляется в pending независимо от входного значения
func (r *Repository) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	stored := *appt
	stored.ID = uuid.NewString()
	stored.Status = domain.StatusPending
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.items[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	result := stored
	return &result, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	result := *stored
	return &result, nil
}

// List получает заявки по фильтру в порядке убывания времени создания
// (новые первыми — дашборд показывает свежую активность сверху)
func (r *Repository) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		stored := r.items[r.order[i]]
		if !matchesFilter(stored, filter) {
			continue
		}
		appt := *stored
		result = append(result, &appt)
	}

	return result, nil
}

// Transition переводит заявку в целевой статус
// Недопустимый переход отклоняется, запись остаётся без изменений
func (r *Repository) Transition(_ context.Context, id string, target domain.AppointmentStatus) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	if !domain.CanTransition(stored.Status, target) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	stored.Status = target
	stored.UpdatedAt = now
	if target == domain.StatusCompleted {
		stored.CompletedAt = &now
	}

	result := *stored
	return &result, nil
}

// Cancel отменяет заявку с указанием причины
func (r *Repository) Cancel(_ context.Context, id string, reason string) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	if !domain.CanTransition(stored.Status, domain.StatusCancelled) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	stored.Status = domain.StatusCancelled
	stored.UpdatedAt = now
	stored.CancelledAt = &now
	if reason != "" {
		stored.CancellationReason = &reason
	}

	result := *stored
	return &result, nil
}

// Complete завершает заявку, фиксируя фактическую стоимость и заметки мастера
func (r *Repository) Complete(_ context.Context, id string, actualCost, technicianNotes string) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	if !domain.CanTransition(stored.Status, domain.StatusCompleted) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	stored.Status = domain.StatusCompleted
	stored.UpdatedAt = now
	stored.CompletedAt = &now
	if actualCost != "" {
		stored.ActualCost = actualCost
	}
	if technicianNotes != "" {
		stored.TechnicianNotes = technicianNotes
	}

	result := *stored
	return &result, nil
}

// Reschedule переносит запрошенные дату и время заявки
// Допустимо только для статусов pending и confirmed, статус не меняется
func (r *Repository) Reschedule(_ context.Context, id string, date time.Time, startTime types.TimeString) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	if !stored.CanBeRescheduled() {
		return nil, ErrCannotReschedule
	}

	stored.Date = date
	stored.StartTime = &startTime
	stored.UpdatedAt = time.Now()

	result := *stored
	return &result, nil
}

// CountByStatus возвращает количество заявок в разрезе статусов
func (r *Repository) CountByStatus(_ context.Context) (map[domain.AppointmentStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.AppointmentStatus]int)
	for _, stored := range r.items {
		counts[stored.Status]++
	}

	return counts, nil
}

// Len возвращает общее количество заявок (для метрик)
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// matchesFilter проверяет заявку на соответствие фильтру
// Фильтрация по периоду выполняется по запрошенной дате выезда
func matchesFilter(appt *domain.Appointment, filter domain.AppointmentsFilter) bool {
	if filter.Status != nil && appt.Status != *filter.Status {
		return false
	}
	if filter.Kind != nil && appt.Kind != *filter.Kind {
		return false
	}
	if filter.ContactID != nil && appt.ContactID != *filter.ContactID {
		return false
	}
	if filter.StartDate != nil {
		if appt.Date.IsZero() || appt.Date.Before(truncateToDay(*filter.StartDate)) {
			return false
		}
	}
	if filter.EndDate != nil {
		endExclusive := truncateToDay(*filter.EndDate).AddDate(0, 0, 1)
		if appt.Date.IsZero() || !appt.Date.Before(endExclusive) {
			return false
		}
	}
	return true
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
