package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/om-engineers/OME-BookingService/pkg/types"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to in_progress skips confirmation", StatusPending, StatusInProgress, false},
		{"pending to completed skips work", StatusPending, StatusCompleted, false},
		{"confirmed to in_progress", StatusConfirmed, StatusInProgress, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed back to pending", StatusConfirmed, StatusPending, false},
		{"in_progress to completed", StatusInProgress, StatusCompleted, true},
		{"in_progress to cancelled", StatusInProgress, StatusCancelled, true},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled cannot be cancelled again", StatusCancelled, StatusCancelled, false},
		{"same status is not a transition", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, status)

	_, err = ParseStatus("done")
	assert.Error(t, err)

	_, err = ParseStatus("")
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("quotation")
	require.NoError(t, err)
	assert.Equal(t, KindQuotation, kind)

	_, err = ParseKind("consultation")
	assert.Error(t, err)
}

func TestAppointmentIsActive(t *testing.T) {
	appt := &Appointment{Status: StatusPending}
	assert.True(t, appt.IsActive())

	appt.Status = StatusCompleted
	assert.True(t, appt.IsActive())

	appt.Status = StatusCancelled
	assert.False(t, appt.IsActive())
}

func TestAppointmentCanBeRescheduled(t *testing.T) {
	appt := &Appointment{Status: StatusPending}
	assert.True(t, appt.CanBeRescheduled())

	appt.Status = StatusConfirmed
	assert.True(t, appt.CanBeRescheduled())

	appt.Status = StatusInProgress
	assert.False(t, appt.CanBeRescheduled())

	appt.Status = StatusCompleted
	assert.False(t, appt.CanBeRescheduled())
}

func TestAppointmentHasRequestedTime(t *testing.T) {
	appt := &Appointment{Kind: KindQuotation}
	assert.False(t, appt.HasRequestedTime())

	start := types.TimeString("10:00")
	appt.StartTime = &start
	assert.True(t, appt.HasRequestedTime())
}

func TestAppointmentOccursOn(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	appt := &Appointment{Date: date}

	assert.True(t, appt.OccursOn(time.Date(2026, 9, 15, 23, 30, 0, 0, time.UTC)))
	assert.False(t, appt.OccursOn(date.AddDate(0, 0, 1)))

	noDate := &Appointment{}
	assert.False(t, noDate.OccursOn(date))
}

func TestSlotOverlaps(t *testing.T) {
	slot := AvailableSlot{
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("11:00"),
		DurationMinutes: 60,
	}

	// Пересечение по середине
	assert.True(t, slot.Overlaps(types.TimeString("10:30"), types.TimeString("11:30")))
	assert.True(t, slot.Overlaps(types.TimeString("09:30"), types.TimeString("10:30")))
	assert.True(t, slot.Overlaps(types.TimeString("10:00"), types.TimeString("11:00")))

	// Встык — не пересечение
	assert.False(t, slot.Overlaps(types.TimeString("09:00"), types.TimeString("10:00")))
	assert.False(t, slot.Overlaps(types.TimeString("11:00"), types.TimeString("12:00")))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "919876543210", NormalizePhone("+91 98765 43210"))
	assert.Equal(t, "9876543210", NormalizePhone("(987) 654-3210"))
	assert.Equal(t, "", NormalizePhone("no digits"))
}

func TestServiceOfferingMatchesQuery(t *testing.T) {
	offering := &ServiceOffering{
		Name:        "Electrical Repair",
		Description: "Wiring, switchboards and fixture installation",
	}

	assert.True(t, offering.MatchesQuery(""))
	assert.True(t, offering.MatchesQuery("repair"))
	assert.True(t, offering.MatchesQuery("WIRING"))
	assert.False(t, offering.MatchesQuery("plumbing"))
}

func TestServiceOfferingMatchesCategory(t *testing.T) {
	offering := &ServiceOffering{Category: CategoryPlumbing}

	assert.True(t, offering.MatchesCategory(""))
	assert.True(t, offering.MatchesCategory("plumbing"))
	assert.True(t, offering.MatchesCategory(CategoryPlumbing))
	assert.False(t, offering.MatchesCategory(CategoryElectrical))
}
