package submit_request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/om-engineers/OME-BookingService/internal/domain"
	catalogRepo "github.com/om-engineers/OME-BookingService/internal/infra/storage/catalog"
	"github.com/om-engineers/OME-BookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	created *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	stored := *appt
	stored.ID = "appt-1"
	stored.Status = domain.StatusPending
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

type fakeContactRepo struct {
	upserted *domain.Contact
	created  bool
}

func (f *fakeContactRepo) Upsert(_ context.Context, contact *domain.Contact) (*domain.Contact, bool, error) {
	stored := *contact
	stored.ID = "contact-1"
	f.upserted = &stored
	return &stored, f.created, nil
}

type fakeCatalogRepo struct {
	offering *domain.ServiceOffering
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id string) (*domain.ServiceOffering, error) {
	if f.offering == nil || f.offering.ID != id {
		return nil, catalogRepo.ErrServiceNotFound
	}
	result := *f.offering
	return &result, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSchedule() domain.WorkSchedule {
	return domain.WorkSchedule{
		Open:                types.TimeString("09:00"),
		Close:               types.TimeString("18:00"),
		SlotDurationMinutes: 60,
		AdvanceBookingDays:  90,
	}
}

func activeOffering() *domain.ServiceOffering {
	return &domain.ServiceOffering{
		ID:       "service-1",
		Name:     "Plumbing Services",
		Category: domain.CategoryPlumbing,
		IsActive: true,
	}
}

func bookingRequest(date time.Time, startTime string) *Request {
	ts := types.TimeString(startTime)
	return &Request{
		Kind:      domain.KindBooking,
		Name:      "Priya Sharma",
		Phone:     "+91 98765 43210",
		Email:     "priya@example.com",
		Address:   "42 MG Road",
		ServiceID: "service-1",
		Date:      date,
		StartTime: &ts,
		Notes:     "Leaking kitchen tap",
	}
}

func TestExecuteCreatesBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	apptRepo := &fakeAppointmentRepo{}
	contactRepo := &fakeContactRepo{created: true}

	uc := NewUseCase(apptRepo, contactRepo, &fakeCatalogRepo{offering: activeOffering()}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), bookingRequest(now.AddDate(0, 0, 3), "10:00"))
	require.NoError(t, err)

	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, "contact-1", resp.ContactID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.True(t, resp.ContactCreated)

	require.NotNil(t, apptRepo.created)
	assert.Equal(t, "contact-1", apptRepo.created.ContactID)
	require.NotNil(t, apptRepo.created.StartTime)
	assert.Equal(t, "10:00", apptRepo.created.StartTime.String())
}

func TestExecuteQuotationWithoutDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	apptRepo := &fakeAppointmentRepo{}

	uc := NewUseCase(apptRepo, &fakeContactRepo{}, &fakeCatalogRepo{offering: activeOffering()}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), &Request{
		Kind:      domain.KindQuotation,
		Name:      "Arun Kumar",
		Phone:     "9123456789",
		Email:     "arun@example.com",
		Address:   "7 Park Street",
		ServiceID: "service-1",
		Notes:     "Full house rewiring estimate",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.KindQuotation, resp.Kind)
	assert.Nil(t, resp.StartTime)
	assert.True(t, resp.Date.IsZero())
}

func TestExecuteValidationErrors(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeContactRepo{}, &fakeCatalogRepo{offering: activeOffering()}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})
	ctx := context.Background()

	// Телефон со слишком малым количеством цифр
	req := bookingRequest(now.AddDate(0, 0, 1), "10:00")
	req.Phone = "12345"
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)

	// Email без @
	req = bookingRequest(now.AddDate(0, 0, 1), "10:00")
	req.Email = "not-an-email"
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)

	// Бронирование без времени
	req = bookingRequest(now.AddDate(0, 0, 1), "10:00")
	req.StartTime = nil
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)

	// Смета без адреса
	_, err = uc.Execute(ctx, &Request{
		Kind:      domain.KindQuotation,
		Name:      "Arun Kumar",
		Phone:     "9123456789",
		Email:     "arun@example.com",
		ServiceID: "service-1",
		Notes:     "estimate",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExecuteDateValidation(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeContactRepo{}, &fakeCatalogRepo{offering: activeOffering()}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})
	ctx := context.Background()

	// Дата в прошлом
	_, err := uc.Execute(ctx, bookingRequest(now.AddDate(0, 0, -1), "10:00"))
	assert.ErrorIs(t, err, ErrInvalidDate)

	// За пределами окна бронирования
	_, err = uc.Execute(ctx, bookingRequest(now.AddDate(0, 0, 91), "10:00"))
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	// Сегодня — допустимо
	_, err = uc.Execute(ctx, bookingRequest(now, "10:00"))
	assert.NoError(t, err)

	// Сегодня по локальному календарю западнее UTC, дата из запроса в UTC
	loc := time.FixedZone("UTC-7", -7*3600)
	ucWest := NewUseCase(&fakeAppointmentRepo{}, &fakeContactRepo{}, &fakeCatalogRepo{offering: activeOffering()}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: time.Date(2026, 9, 1, 20, 0, 0, 0, loc)})
	_, err = ucWest.Execute(ctx, bookingRequest(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), "10:00"))
	assert.NoError(t, err)
}

func TestExecuteWorkingHoursValidation(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeContactRepo{}, &fakeCatalogRepo{offering: activeOffering()}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})
	ctx := context.Background()

	// До открытия
	_, err := uc.Execute(ctx, bookingRequest(now.AddDate(0, 0, 1), "08:00"))
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	// Визит не успевает закончиться до закрытия
	_, err = uc.Execute(ctx, bookingRequest(now.AddDate(0, 0, 1), "17:30"))
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	// Последний допустимый слот
	_, err = uc.Execute(ctx, bookingRequest(now.AddDate(0, 0, 1), "17:00"))
	assert.NoError(t, err)
}

func TestExecuteServiceChecks(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// Услуга не найдена
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeContactRepo{}, &fakeCatalogRepo{}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})
	_, err := uc.Execute(ctx, bookingRequest(now.AddDate(0, 0, 1), "10:00"))
	assert.ErrorIs(t, err, ErrServiceNotFound)

	// Услуга отключена
	inactive := activeOffering()
	inactive.IsActive = false
	uc = NewUseCase(&fakeAppointmentRepo{}, &fakeContactRepo{}, &fakeCatalogRepo{offering: inactive}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})
	_, err = uc.Execute(ctx, bookingRequest(now.AddDate(0, 0, 1), "10:00"))
	assert.ErrorIs(t, err, ErrServiceInactive)
}
