package get_available_slots

import (
	"github.com/om-engineers/OME-BookingService/internal/domain"
	getAvailableSlots "github.com/om-engineers/OME-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse один свободный слот
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	EndTime         string `json:"endTime"`   // "11:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string         `json:"date"` // "2025-10-15"
	SlotSizeMinutes int            `json:"slotSizeMinutes"`
	Slots           []SlotResponse `json:"slots"`
	Total           int            `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		SlotSizeMinutes: resp.SlotSizeMinutes,
		Slots:           make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			EndTime:         slot.EndTime.String(),
			DurationMinutes: slot.DurationMinutes,
		})
	}
	out.Total = len(out.Slots)

	return out
}
