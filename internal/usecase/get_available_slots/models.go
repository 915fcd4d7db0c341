package get_available_slots

import (
	"time"

	"github.com/om-engineers/OME-BookingService/internal/domain"
)

// Request модель запроса свободных слотов на день
type Request struct {
	Date time.Time

	// Длина слота в минутах; 0 — длина по умолчанию из расписания
	SlotSizeMinutes int
}

// Response модель ответа со свободными слотами
type Response struct {
	Date            time.Time
	SlotSizeMinutes int
	Slots           []domain.AvailableSlot
}
