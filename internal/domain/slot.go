package domain

import "github.com/om-engineers/OME-BookingService/pkg/types"

// AvailableSlot свободный временной интервал в рабочем дне
// Интервал полуоткрытый: [StartTime, EndTime)
type AvailableSlot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}

// Overlaps возвращает true, если слот пересекается с интервалом [start, end)
// Граничащие интервалы (конец одного равен началу другого) не пересекаются
func (s *AvailableSlot) Overlaps(start, end types.TimeString) bool {
	return start.IsBefore(s.EndTime) && end.IsAfter(s.StartTime)
}

// WorkSchedule рабочее расписание: единое дневное окно выездов
// для всех дней недели
type WorkSchedule struct {
	Open                types.TimeString
	Close               types.TimeString
	SlotDurationMinutes int
	AdvanceBookingDays  int // 0 = без ограничения
}

// HasAdvanceBookingLimit returns true if there is a limit on how far in
// advance appointments can be requested
func (w WorkSchedule) HasAdvanceBookingLimit() bool {
	return w.AdvanceBookingDays > 0
}
