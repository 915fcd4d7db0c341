package submit_request

import (
	"fmt"
	"strings"
	"time"

	"github.com/om-engineers/OME-BookingService/internal/domain"
)

// validateRequest проверяет заполненность и формат полей формы
func validateRequest(req *Request) error {
	if req.Kind != domain.KindBooking && req.Kind != domain.KindQuotation {
		return fmt.Errorf("%w: unknown request kind %q", ErrValidation, req.Kind)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	digits := domain.NormalizePhone(req.Phone)
	if len(digits) < domain.MinPhoneDigits || len(digits) > domain.MaxPhoneDigits {
		return fmt.Errorf("%w: phone number must contain %d-%d digits",
			ErrValidation, domain.MinPhoneDigits, domain.MaxPhoneDigits)
	}

	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: service is required", ErrValidation)
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrValidation, domain.MaxNotesLength)
	}

	// Бронирование требует конкретных даты и времени;
	// смета требует адрес и описание работ
	switch req.Kind {
	case domain.KindBooking:
		if req.Date.IsZero() {
			return fmt.Errorf("%w: date is required for a booking", ErrValidation)
		}
		if req.StartTime == nil {
			return fmt.Errorf("%w: start time is required for a booking", ErrValidation)
		}
	case domain.KindQuotation:
		if strings.TrimSpace(req.Address) == "" {
			return fmt.Errorf("%w: address is required for a quotation", ErrValidation)
		}
		if strings.TrimSpace(req.Notes) == "" {
			return fmt.Errorf("%w: work description is required for a quotation", ErrValidation)
		}
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и внутри окна бронирования
func validateDate(requestDate time.Time, now time.Time, schedule domain.WorkSchedule) error {
	requestDateOnly := truncateToDay(requestDate)
	nowOnly := truncateToDay(now)

	if requestDateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	if !schedule.HasAdvanceBookingLimit() {
		return nil
	}

	maxDate := nowOnly.AddDate(0, 0, schedule.AdvanceBookingDays)
	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance",
			ErrDateTooFarInFuture, schedule.AdvanceBookingDays)
	}

	return nil
}

// validateStartTime проверяет, что запрошенное время укладывается в рабочее окно
func validateStartTime(req *Request, schedule domain.WorkSchedule) error {
	if req.StartTime == nil {
		return nil
	}

	start := *req.StartTime
	if start.IsBefore(schedule.Open) {
		return fmt.Errorf("%w: %s is before opening time %s", ErrOutsideWorkingHours, start, schedule.Open)
	}

	end, err := start.AddMinutes(schedule.SlotDurationMinutes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if end.IsAfter(schedule.Close) {
		return fmt.Errorf("%w: visit would end after closing time %s", ErrOutsideWorkingHours, schedule.Close)
	}

	return nil
}

// truncateToDay обнуляет время, оставляя только дату.
// Нормализуем в UTC, чтобы локальное "сегодня" и дата из запроса
// сравнивались по одному календарю
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
