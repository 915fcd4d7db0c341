package get_available_slots

import (
	"fmt"
	"time"

	"github.com/om-engineers/OME-BookingService/internal/domain"
)

// validateRequest проверяет параметры запроса слотов
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}

	if req.SlotSizeMinutes != 0 &&
		(req.SlotSizeMinutes < domain.MinSlotDurationMinutes || req.SlotSizeMinutes > domain.MaxSlotDurationMinutes) {
		return fmt.Errorf("%w: slot size must be between %d and %d minutes",
			ErrValidation, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	return nil
}

// validateDateWindow проверяет, что дата не выходит за горизонт предварительной записи
func validateDateWindow(date, now time.Time, schedule domain.WorkSchedule) error {
	if !schedule.HasAdvanceBookingLimit() {
		return nil
	}

	maxDate := truncateToDay(now).AddDate(0, 0, schedule.AdvanceBookingDays)
	if truncateToDay(date).After(maxDate) {
		return fmt.Errorf("%w: can only view availability %d days in advance",
			ErrValidation, schedule.AdvanceBookingDays)
	}

	return nil
}
