package schedule

import (
	"sort"

	"github.com/sportcrm/club-schedule-api/pkg/models"
)

// Default calendar geometry: the 07:00-22:00 window at 56 pixels per hour.
const (
	DefaultStartHour  = 7
	DefaultEndHour    = 22
	DefaultUnitHeight = 56.0
)

// Window is the clock-hour range shown on the weekly calendar, [StartHour,
// EndHour).
type Window struct {
	StartHour int
	EndHour   int
}

// LayoutBox positions one slot on a day column: Top is the offset from the
// window's upper edge, Height the rendered extent, both in unit-height
// pixels. Dimmed carries the cancelled-slot styling hint.
type LayoutBox struct {
	Slot   models.ScheduleSlot `json:"slot"`
	Top    float64             `json:"top"`
	Height float64             `json:"height"`
	Dimmed bool                `json:"dimmed"`
}

// LayoutWeek buckets slots by weekday, sorts each day by start time and
// computes clamped geometry against the visible window. All seven days are
// present in the result even when empty. A slot entirely outside the window
// is omitted from the output; that is a display decision, not an error.
//
// Same-day slots with overlapping time ranges are positioned independently
// and will collide visually. Accepted limitation: the calendar shows the
// conflict rather than resolving it.
func LayoutWeek(slots []models.ScheduleSlot, win Window, unitHeight float64) map[models.DayOfWeek][]LayoutBox {
	byDay := make(map[models.DayOfWeek][]models.ScheduleSlot, len(models.Days))
	for _, s := range slots {
		byDay[s.DayOfWeek] = append(byDay[s.DayOfWeek], s)
	}

	winStart := win.StartHour * 60
	winEnd := win.EndHour * 60

	out := make(map[models.DayOfWeek][]LayoutBox, len(models.Days))
	for _, day := range models.Days {
		list := byDay[day]
		sort.SliceStable(list, func(i, j int) bool {
			// zero-padded HH:MM, so lexical order is time order
			return list[i].StartTime < list[j].StartTime
		})

		boxes := make([]LayoutBox, 0, len(list))
		for _, s := range list {
			start := ParseTimeToMinutes(s.StartTime)
			end := ParseTimeToMinutes(s.EndTime)
			if start < winStart {
				start = winStart
			}
			if end > winEnd {
				end = winEnd
			}
			if end <= start {
				continue
			}
			boxes = append(boxes, LayoutBox{
				Slot:   s,
				Top:    float64(start-winStart) / 60 * unitHeight,
				Height: float64(end-start) / 60 * unitHeight,
				Dimmed: s.Status == models.StatusCancelled,
			})
		}
		out[day] = boxes
	}

	return out
}
