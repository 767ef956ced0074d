package schedule

import (
	"github.com/sportcrm/club-schedule-api/pkg/models"
)

// Default time range a newly enabled weekday row starts with.
const (
	DefaultSlotStart = "09:00"
	DefaultSlotEnd   = "10:00"
)

// BuildCommand converts a draft into the create/update payload: enabled days
// only, Enabled flag stripped. It performs no validation; call Validate first
// and refuse to build while it returns errors.
func BuildCommand(d Draft) models.ScheduleBatchCommand {
	enabled := d.EnabledSlots()
	slots := make([]models.DaySlot, 0, len(enabled))
	for _, s := range enabled {
		slots = append(slots, models.DaySlot{
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	return models.ScheduleBatchCommand{
		CoachID:   d.CoachID,
		Type:      d.Type,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		Slots:     slots,
	}
}

// DeleteKey reduces a batch to the payload that cancels it.
func DeleteKey(b models.ScheduleBatch) models.BatchKey {
	return models.BatchKey{
		CoachID:   b.CoachID,
		Type:      b.Type,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}

// DraftFromBatch opens a batch for editing: seven Monday-first rows, each
// weekday enabled and timed from its existing slot, or disabled with the
// default 09:00-10:00 range. When a day has duplicate slots the first one
// seeds the row; the rest survive in the batch untouched until submission
// replaces the full set.
func DraftFromBatch(b models.ScheduleBatch) Draft {
	rows := make([]models.EditableSlot, 0, len(models.Days))
	for _, day := range models.Days {
		row := models.EditableSlot{
			DayOfWeek: day,
			StartTime: DefaultSlotStart,
			EndTime:   DefaultSlotEnd,
		}
		for _, s := range b.Schedules {
			if s.DayOfWeek == day {
				row.StartTime = TruncateToHHMM(s.StartTime)
				row.EndTime = TruncateToHHMM(s.EndTime)
				row.Enabled = true
				break
			}
		}
		rows = append(rows, row)
	}
	return Draft{
		CoachID:   b.CoachID,
		Type:      b.Type,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Slots:     rows,
	}
}

// DraftFromCommand rebuilds a seven-row draft from an inbound command so the
// same validation rules run server-side before the command is applied.
func DraftFromCommand(cmd models.ScheduleBatchCommand) Draft {
	rows := make([]models.EditableSlot, 0, len(models.Days))
	for _, day := range models.Days {
		row := models.EditableSlot{
			DayOfWeek: day,
			StartTime: DefaultSlotStart,
			EndTime:   DefaultSlotEnd,
		}
		for _, s := range cmd.Slots {
			if s.DayOfWeek == day {
				row.StartTime = TruncateToHHMM(s.StartTime)
				row.EndTime = TruncateToHHMM(s.EndTime)
				row.Enabled = true
				break
			}
		}
		rows = append(rows, row)
	}
	return Draft{
		CoachID:   cmd.CoachID,
		Type:      cmd.Type,
		StartDate: cmd.StartDate,
		EndDate:   cmd.EndDate,
		Slots:     rows,
	}
}
