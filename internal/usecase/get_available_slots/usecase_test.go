package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/om-engineers/OME-BookingService/internal/domain"
	"github.com/om-engineers/OME-BookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) List(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
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

func activeBooking(startTime string, duration int, status domain.AppointmentStatus) *domain.Appointment {
	ts := types.TimeString(startTime)
	return &domain.Appointment{
		Kind:            domain.KindBooking,
		StartTime:       &ts,
		DurationMinutes: duration,
		Status:          status,
	}
}

func TestExecuteReturnsAllSlotsWhenDayIsFree(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeAppointmentRepo{}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), &Request{Date: now.AddDate(0, 0, 1)})
	require.NoError(t, err)

	// 09:00-18:00 с шагом 60 минут — девять слотов
	require.Len(t, resp.Slots, 9)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "10:00", resp.Slots[0].EndTime.String())
	assert.Equal(t, "17:00", resp.Slots[8].StartTime.String())
	assert.Equal(t, "18:00", resp.Slots[8].EndTime.String())
}

func TestExecuteRemovesOccupiedSlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			activeBooking("10:00", 60, domain.StatusConfirmed),
		},
	}
	uc := NewUseCase(repo, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), &Request{Date: now.AddDate(0, 0, 1)})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 8)
	for _, slot := range resp.Slots {
		assert.NotEqual(t, "10:00", slot.StartTime.String())
	}
}

func TestExecuteCancelledDoesNotBlock(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			activeBooking("10:00", 60, domain.StatusCancelled),
		},
	}
	uc := NewUseCase(repo, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), &Request{Date: now.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 9)
}

func TestExecuteQuotationWithoutTimeDoesNotBlock(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{Kind: domain.KindQuotation, Status: domain.StatusPending, DurationMinutes: 60},
		},
	}
	uc := NewUseCase(repo, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), &Request{Date: now.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 9)
}

func TestExecutePartialOverlapBlocksBothSlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			// Заявка 10:30-12:30 пересекает слоты 10:00, 11:00 и 12:00
			activeBooking("10:30", 120, domain.StatusPending),
		},
	}
	uc := NewUseCase(repo, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), &Request{Date: now.AddDate(0, 0, 1)})
	require.NoError(t, err)

	starts := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		starts = append(starts, slot.StartTime.String())
	}
	assert.NotContains(t, starts, "10:00")
	assert.NotContains(t, starts, "11:00")
	assert.NotContains(t, starts, "12:00")
	assert.Contains(t, starts, "09:00")
	assert.Contains(t, starts, "13:00")
}

func TestExecutePastDateReturnsNoSlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeAppointmentRepo{}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), &Request{Date: now.AddDate(0, 0, -1)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecuteCustomSlotSize(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeAppointmentRepo{}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            now.AddDate(0, 0, 1),
		SlotSizeMinutes: 120,
	})
	require.NoError(t, err)

	// 09:00-18:00 по 120 минут: последний неполный слот 17:00-19:00 не выдаётся
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, "15:00", resp.Slots[3].StartTime.String())
	assert.Equal(t, "17:00", resp.Slots[3].EndTime.String())
}

func TestExecuteRejectsDateBeyondAdvanceWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeAppointmentRepo{}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	// Горизонт записи 90 дней, запрашиваем год вперёд
	_, err := uc.Execute(context.Background(), &Request{Date: now.AddDate(0, 0, 365)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExecuteAllowsDateAtAdvanceWindowEdge(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeAppointmentRepo{}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), &Request{Date: now.AddDate(0, 0, 90)})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 9)
}

func TestExecuteNoAdvanceLimitAcceptsAnyFutureDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	schedule := testSchedule()
	schedule.AdvanceBookingDays = 0
	uc := NewUseCase(&fakeAppointmentRepo{}, schedule, nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	resp, err := uc.Execute(context.Background(), &Request{Date: now.AddDate(2, 0, 0)})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 9)
}

func TestExecuteSameDayInWesternTimezoneIsNotPast(t *testing.T) {
	// Локальный вечер 1 сентября в UTC-7, дата из запроса разобрана как UTC
	loc := time.FixedZone("UTC-7", -7*3600)
	now := time.Date(2026, 9, 1, 20, 0, 0, 0, loc)
	uc := NewUseCase(&fakeAppointmentRepo{}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	reqDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: reqDate})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 9)
}

func TestExecuteRejectsInvalidSlotSize(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeAppointmentRepo{}, testSchedule(), nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: now})

	_, err := uc.Execute(context.Background(), &Request{
		Date:            now.AddDate(0, 0, 1),
		SlotSizeMinutes: 5,
	})
	assert.ErrorIs(t, err, ErrValidation)
}
