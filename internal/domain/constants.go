package domain

// Default schedule values
const (
	DefaultOpenTime            = "09:00"
	DefaultCloseTime           = "18:00"
	DefaultSlotDurationMinutes = 60
	DefaultAdvanceBookingDays  = 90
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxNotesLength         = 500
	MaxCancelReasonLength  = 500
	MinPhoneDigits         = 10
	MaxPhoneDigits         = 13
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
