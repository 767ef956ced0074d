package schedule

import (
	"github.com/sportcrm/club-schedule-api/pkg/models"
)

// ErrorCode tags one validation failure for inline display.
type ErrorCode string

const (
	MissingCoach      ErrorCode = "MISSING_COACH"
	MissingDateRange  ErrorCode = "MISSING_DATE_RANGE"
	InvertedDateRange ErrorCode = "INVERTED_DATE_RANGE"
	NoDaysSelected    ErrorCode = "NO_DAYS_SELECTED"
	InvalidTimeRange  ErrorCode = "INVALID_TIME_RANGE"
)

// ValidationError is one discrete, user-displayable validation failure.
// Day is set only for per-day codes.
type ValidationError struct {
	Code ErrorCode        `json:"code"`
	Day  models.DayOfWeek `json:"dayOfWeek,omitempty"`
}

var errorMessages = map[ErrorCode]string{
	MissingCoach:      "Выберите тренера",
	MissingDateRange:  "Укажите даты периода",
	InvertedDateRange: "Дата окончания раньше даты начала",
	NoDaysSelected:    "Выберите хотя бы один день",
	InvalidTimeRange:  "Некорректное время",
}

// Message returns the inline display text for the error.
func (e ValidationError) Message() string {
	msg := errorMessages[e.Code]
	if e.Day != "" {
		return msg + ": " + string(e.Day)
	}
	return msg
}

// Draft is the in-progress, unsaved edit state of a batch. Slots holds one
// EditableSlot per weekday, Monday-first.
type Draft struct {
	CoachID   string                `json:"coachId"`
	Type      models.ScheduleType   `json:"type"`
	StartDate string                `json:"startDate"`
	EndDate   string                `json:"endDate"`
	Slots     []models.EditableSlot `json:"slots"`
}

// EnabledSlots returns the draft rows whose weekday participates.
func (d Draft) EnabledSlots() []models.EditableSlot {
	var enabled []models.EditableSlot
	for _, s := range d.Slots {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	return enabled
}

// Validate evaluates every rule independently and returns the complete error
// set; an empty result means the draft may be submitted. It is pure and
// never panics, so callers can re-run it on every field change for live
// inline errors.
//
// Rules:
//   - empty coach id
//   - empty start or end date
//   - start date after end date (lexical ISO comparison)
//   - no enabled day
//   - per enabled day, start time at or after end time (lexical comparison)
func Validate(d Draft) []ValidationError {
	var errs []ValidationError

	if d.CoachID == "" {
		errs = append(errs, ValidationError{Code: MissingCoach})
	}
	if d.StartDate == "" || d.EndDate == "" {
		errs = append(errs, ValidationError{Code: MissingDateRange})
	}
	if d.StartDate != "" && d.EndDate != "" && d.StartDate > d.EndDate {
		errs = append(errs, ValidationError{Code: InvertedDateRange})
	}

	enabled := d.EnabledSlots()
	if len(enabled) == 0 {
		errs = append(errs, ValidationError{Code: NoDaysSelected})
	}
	for _, s := range enabled {
		if s.StartTime >= s.EndTime {
			errs = append(errs, ValidationError{Code: InvalidTimeRange, Day: s.DayOfWeek})
		}
	}

	return errs
}
