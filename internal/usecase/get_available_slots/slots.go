package get_available_slots

import (
	"github.com/om-engineers/OME-BookingService/internal/domain"
	"github.com/om-engineers/OME-BookingService/pkg/types"
)

// generateSlots нарезает рабочее окно на слоты фиксированной длины.
// Слот, не помещающийся до закрытия целиком, не выдаётся.
func generateSlots(open, close types.TimeString, slotSizeMinutes int) ([]domain.AvailableSlot, error) {
	slots := make([]domain.AvailableSlot, 0)

	start := open
	for start.IsBefore(close) {
		end, err := start.AddMinutes(slotSizeMinutes)
		if err != nil {
			return nil, err
		}
		if end.IsAfter(close) {
			break
		}

		slots = append(slots, domain.AvailableSlot{
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: slotSizeMinutes,
		})

		start = end
	}

	return slots, nil
}

// filterOccupied убирает слоты, пересекающиеся с активными заявками.
// Заявки без назначенного времени (сметы без выбранного слота) ничего не занимают.
func filterOccupied(slots []domain.AvailableSlot, appointments []*domain.Appointment) []domain.AvailableSlot {
	free := make([]domain.AvailableSlot, 0, len(slots))

	for _, slot := range slots {
		occupied := false
		for _, appt := range appointments {
			if !appt.IsActive() || !appt.HasRequestedTime() {
				continue
			}

			apptEnd, err := appt.StartTime.AddMinutes(appt.DurationMinutes)
			if err != nil {
				continue
			}
			if slot.Overlaps(*appt.StartTime, apptEnd) {
				occupied = true
				break
			}
		}
		if !occupied {
			free = append(free, slot)
		}
	}

	return free
}
