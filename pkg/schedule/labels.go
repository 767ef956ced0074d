package schedule

import (
	"github.com/sportcrm/club-schedule-api/pkg/models"
)

// Display tables shared by the calendar, batch cards and summary views.
// Defined once; layout and validation consult the same wording.

// DayLabel is the full Russian weekday name, DayShort the two-letter header.
var (
	DayLabel = map[models.DayOfWeek]string{
		models.Monday:    "Понедельник",
		models.Tuesday:   "Вторник",
		models.Wednesday: "Среда",
		models.Thursday:  "Четверг",
		models.Friday:    "Пятница",
		models.Saturday:  "Суббота",
		models.Sunday:    "Воскресенье",
	}

	DayShort = map[models.DayOfWeek]string{
		models.Monday:    "Пн",
		models.Tuesday:   "Вт",
		models.Wednesday: "Ср",
		models.Thursday:  "Чт",
		models.Friday:    "Пт",
		models.Saturday:  "Сб",
		models.Sunday:    "Вс",
	}

	typeLabels = map[models.ScheduleType]string{
		models.TypeRegular:   "Регулярное",
		models.TypeTemporary: "Временное",
	}

	statusLabels = map[models.ScheduleStatus]string{
		models.StatusActive:    "Активно",
		models.StatusCancelled: "Отменено",
	}
)

// TypeLabel returns the display name of a schedule type; unknown values fall
// back to the raw wire string.
func TypeLabel(t models.ScheduleType) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// StatusLabel returns the display name of a slot status; unknown values fall
// back to the raw wire string.
func StatusLabel(s models.ScheduleStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// IsDimmed reports whether a status renders at reduced opacity. Cancelled
// slots stay visible on the calendar, only dimmed.
func IsDimmed(s models.ScheduleStatus) bool {
	return s == models.StatusCancelled
}
