package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/om-engineers/OME-BookingService/internal/domain"
	apptRepo "github.com/om-engineers/OME-BookingService/internal/infra/storage/appointment"
	"github.com/om-engineers/OME-BookingService/internal/service/appointments/models"
	"github.com/om-engineers/OME-BookingService/pkg/types"
)

// Service сервис жизненного цикла заявок
type Service struct {
	apptRepo    AppointmentRepository
	contactRepo ContactRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	apptRepo AppointmentRepository,
	contactRepo ContactRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:    apptRepo,
		contactRepo: contactRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetByID получает заявку с развёрнутыми контактом и услугой
// Контакт и услуга разрешаются по слабым ссылкам: если запись
// по какой-то причине не разрешилась, заявка всё равно возвращается
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentDetailResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	detail := &models.AppointmentDetailResponse{
		AppointmentResponse: *models.FromDomainAppointment(appt),
	}

	if contact, err := s.contactRepo.GetByID(ctx, appt.ContactID); err == nil {
		detail.Contact = models.FromDomainContact(contact)
	} else {
		s.logger.Warn("GetByID: contact id=%s not resolved for appointment id=%s: %v",
			appt.ContactID, id, err)
	}

	if offering, err := s.catalogRepo.GetByID(ctx, appt.ServiceID); err == nil {
		detail.Service = models.FromDomainServiceSummary(offering)
	} else {
		s.logger.Warn("GetByID: service id=%s not resolved for appointment id=%s: %v",
			appt.ServiceID, id, err)
	}

	return detail, nil
}

// List получает заявки по фильтру, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, status=%v, kind=%v", req.Status, req.Kind)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.apptRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Transition переводит заявку в целевой статус
// Таблица переходов проверяется хранилищем атомарно с мутацией;
// отклонённый переход оставляет запись без изменений
func (s *Service) Transition(ctx context.Context, id string, req *models.TransitionRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Transition: appointment id=%s to status=%s by staff=%s", id, req.Status, req.StaffID)

	target, err := domain.ParseStatus(req.Status)
	if err != nil {
		s.logger.Warn("Transition: invalid status=%q for appointment id=%s", req.Status, id)
		return nil, ErrInvalidStatus
	}

	var appt *domain.Appointment
	switch target {
	case domain.StatusCompleted:
		appt, err = s.apptRepo.Complete(ctx, id, req.ActualCost, req.TechnicianNotes)
	case domain.StatusCancelled:
		appt, err = s.apptRepo.Cancel(ctx, id, "")
	default:
		appt, err = s.apptRepo.Transition(ctx, id, target)
	}

	if err != nil {
		switch {
		case errors.Is(err, apptRepo.ErrAppointmentNotFound):
			s.logger.Warn("Transition: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, apptRepo.ErrInvalidTransition):
			s.logger.Warn("Transition: invalid transition to %s for appointment id=%s", target, id)
			return nil, ErrInvalidTransition
		default:
			s.logger.Error("Transition: repository error for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Transition: appointment id=%s moved to status=%s", id, appt.Status)
	return models.FromDomainAppointment(appt), nil
}

// Cancel отменяет заявку с указанием причины
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%s by staff=%s", id, req.StaffID)

	if len(req.Reason) > domain.MaxCancelReasonLength {
		s.logger.Warn("Cancel: reason too long for appointment id=%s", id)
		return nil, fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	appt, err := s.apptRepo.Cancel(ctx, id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, apptRepo.ErrAppointmentNotFound):
			s.logger.Warn("Cancel: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, apptRepo.ErrInvalidTransition):
			s.logger.Warn("Cancel: appointment id=%s cannot be cancelled", id)
			return nil, ErrInvalidTransition
		default:
			s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: appointment id=%s cancelled", id)
	return models.FromDomainAppointment(appt), nil
}

// Reschedule переносит запрошенные дату и время заявки
// Допустимо только для pending и confirmed; статус не меняется
func (s *Service) Reschedule(ctx context.Context, id string, req *models.RescheduleRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Reschedule: appointment id=%s to %s %s by staff=%s", id, req.Date, req.Time, req.StaffID)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("Reschedule: invalid date=%q for appointment id=%s", req.Date, id)
		return nil, fmt.Errorf("%w: invalid date format", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		s.logger.Warn("Reschedule: invalid time=%q for appointment id=%s", req.Time, id)
		return nil, fmt.Errorf("%w: invalid time format", ErrInvalidInput)
	}

	// Дата из запроса разобрана в UTC, поэтому "сегодня" берём по календарю UTC
	today := time.Now()
	if date.Before(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)) {
		s.logger.Warn("Reschedule: date %s is in the past for appointment id=%s", req.Date, id)
		return nil, fmt.Errorf("%w: date must not be in the past", ErrInvalidInput)
	}

	appt, err := s.apptRepo.Reschedule(ctx, id, date, startTime)
	if err != nil {
		switch {
		case errors.Is(err, apptRepo.ErrAppointmentNotFound):
			s.logger.Warn("Reschedule: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, apptRepo.ErrCannotReschedule):
			s.logger.Warn("Reschedule: appointment id=%s cannot be rescheduled", id)
			return nil, ErrCannotReschedule
		default:
			s.logger.Error("Reschedule: repository error for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Reschedule: appointment id=%s moved to %s %s", id, req.Date, req.Time)
	return models.FromDomainAppointment(appt), nil
}

// Statistics возвращает сводку по заявкам для дашборда
func (s *Service) Statistics(ctx context.Context) (*models.StatisticsResponse, error) {
	counts, err := s.apptRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Statistics: repository error: %v", err)
		return nil, fmt.Errorf("%w: Statistics - repository error: %v", ErrInternal, err)
	}

	return models.FromStatusCounts(counts), nil
}
