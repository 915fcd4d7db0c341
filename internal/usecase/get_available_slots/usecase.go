package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/om-engineers/OME-BookingService/internal/domain"
)

// UseCase сценарий выдачи свободных слотов на день
type UseCase struct {
	apptRepo     AppointmentRepository
	schedule     domain.WorkSchedule
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(apptRepo AppointmentRepository, schedule domain.WorkSchedule, logger Logger) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider заменяет провайдер времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает свободные слоты на дату: нарезает рабочее окно
// и убирает слоты, занятые активными заявками
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация параметров
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[Execute] Некорректный запрос слотов: %v", err)
		return nil, err
	}

	slotSize := req.SlotSizeMinutes
	if slotSize == 0 {
		slotSize = uc.schedule.SlotDurationMinutes
	}

	// 2. Дата не должна выходить за горизонт предварительной записи
	now := uc.timeProvider.Now()
	if err := validateDateWindow(req.Date, now, uc.schedule); err != nil {
		uc.logger.Warn("[Execute] Некорректный запрос слотов: %v", err)
		return nil, err
	}

	// 3. Для прошедших дат свободных слотов нет
	if truncateToDay(req.Date).Before(truncateToDay(now)) {
		return &Response{
			Date:            req.Date,
			SlotSizeMinutes: slotSize,
			Slots:           []domain.AvailableSlot{},
		}, nil
	}

	// 4. Нарезаем рабочее окно на слоты
	slots, err := generateSlots(uc.schedule.Open, uc.schedule.Close, slotSize)
	if err != nil {
		uc.logger.Error("[Execute] Ошибка генерации слотов: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Загружаем заявки на этот день
	startDate := truncateToDay(req.Date)
	endDate := startDate
	appointments, err := uc.apptRepo.List(ctx, domain.AppointmentsFilter{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		uc.logger.Error("[Execute] Ошибка загрузки заявок: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 6. Убираем занятые слоты
	free := filterOccupied(slots, appointments)

	uc.logger.Info("[Execute] Слоты на %s: всего=%d свободно=%d",
		req.Date.Format(domain.DateFormat), len(slots), len(free))

	return &Response{
		Date:            req.Date,
		SlotSizeMinutes: slotSize,
		Slots:           free,
	}, nil
}

// truncateToDay обнуляет время, оставляя только дату.
// Нормализуем в UTC, чтобы локальное "сегодня" и дата из запроса
// сравнивались по одному календарю
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
