package submit_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/om-engineers/OME-BookingService/internal/domain"
	catalogRepo "github.com/om-engineers/OME-BookingService/internal/infra/storage/catalog"
)

// UseCase сценарий приёма заявки с публичной формы
type UseCase struct {
	apptRepo     AppointmentRepository
	contactRepo  ContactRepository
	catalogRepo  CatalogRepository
	schedule     domain.WorkSchedule
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	apptRepo AppointmentRepository,
	contactRepo ContactRepository,
	catalog CatalogRepository,
	schedule domain.WorkSchedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		contactRepo:  contactRepo,
		catalogRepo:  catalog,
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

// Execute принимает заявку: проверяет форму, услугу и дату,
// создаёт или обновляет контакт и регистрирует заявку в статусе pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация полей формы
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[Execute] Некорректная заявка: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Проверяем, что услуга существует и активна
	offering, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("[Execute] Услуга не найдена: serviceID=%s", req.ServiceID)
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("[Execute] Ошибка каталога услуг: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !offering.IsActive {
		uc.logger.Warn("[Execute] Услуга отключена: serviceID=%s", req.ServiceID)
		return nil, fmt.Errorf("%w: %s", ErrServiceInactive, offering.Name)
	}

	// 3. Проверяем дату и время, если они указаны
	// Смета без даты — запрос на выезд мастера, слот не занимает
	if !req.Date.IsZero() {
		if err := validateDate(req.Date, now, uc.schedule); err != nil {
			uc.logger.Warn("[Execute] Недопустимая дата %s: %v", req.Date.Format(domain.DateFormat), err)
			return nil, err
		}
		if err := validateStartTime(req, uc.schedule); err != nil {
			uc.logger.Warn("[Execute] Недопустимое время: %v", err)
			return nil, err
		}
	}

	// 4. Создаём или обновляем контакт по номеру телефона
	contact, created, err := uc.contactRepo.Upsert(ctx, &domain.Contact{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		uc.logger.Error("[Execute] Ошибка сохранения контакта: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Регистрируем заявку
	appt, err := uc.apptRepo.Create(ctx, &domain.Appointment{
		ContactID:       contact.ID,
		ServiceID:       offering.ID,
		Kind:            req.Kind,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: uc.schedule.SlotDurationMinutes,
		Notes:           req.Notes,
		Address:         req.Address,
	})
	if err != nil {
		uc.logger.Error("[Execute] Ошибка создания заявки: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("[Execute] Заявка принята: id=%s kind=%s contactID=%s serviceID=%s",
		appt.ID, appt.Kind, contact.ID, offering.ID)

	return &Response{
		ID:              appt.ID,
		ContactID:       contact.ID,
		ServiceID:       offering.ID,
		Kind:            appt.Kind,
		Status:          appt.Status,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		DurationMinutes: appt.DurationMinutes,
		Notes:           appt.Notes,
		Address:         appt.Address,
		ContactCreated:  created,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}, nil
}
