package schedule

import (
	"strings"

	"github.com/sportcrm/club-schedule-api/pkg/models"
)

// BatchKeyOf composes the grouping identity of a slot:
// coachId_startDate_endDate_scheduleType.
func BatchKeyOf(s models.ScheduleSlot) string {
	return strings.Join([]string{s.CoachID, s.StartDate, s.EndDate, string(s.ScheduleType)}, "_")
}

// KeyOf composes the same identity from a bare batch key payload.
func KeyOf(k models.BatchKey) string {
	return strings.Join([]string{k.CoachID, k.StartDate, k.EndDate, string(k.Type)}, "_")
}

// GroupIntoBatches partitions a flat slot list into batches keyed by
// (coach, start date, end date, type). Batch metadata comes from the first
// slot seen for a key, and output order is first-seen key order. Slots inside
// a batch keep input order; sorting is the layout stage's job. Every input
// slot lands in exactly one batch.
func GroupIntoBatches(slots []models.ScheduleSlot) []models.ScheduleBatch {
	index := make(map[string]int, len(slots))
	batches := make([]models.ScheduleBatch, 0, len(slots))

	for _, s := range slots {
		key := BatchKeyOf(s)
		i, ok := index[key]
		if !ok {
			i = len(batches)
			index[key] = i
			batches = append(batches, models.ScheduleBatch{
				Key:       key,
				CoachID:   s.CoachID,
				Type:      s.ScheduleType,
				StartDate: s.StartDate,
				EndDate:   s.EndDate,
			})
		}
		batches[i].Schedules = append(batches[i].Schedules, s)
	}

	return batches
}
