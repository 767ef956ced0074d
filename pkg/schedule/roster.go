package schedule

import (
	"github.com/sportcrm/club-schedule-api/pkg/models"
)

// CoachNames indexes a roster by coach id.
func CoachNames(roster []models.CoachOption) map[string]string {
	names := make(map[string]string, len(roster))
	for _, c := range roster {
		names[c.CoachID] = c.Name
	}
	return names
}

// DecorateBatches fills CoachName on each batch from the roster. A coach id
// missing from the roster degrades to the truncated raw id so the batch card
// still renders.
func DecorateBatches(batches []models.ScheduleBatch, roster []models.CoachOption) []models.ScheduleBatch {
	names := CoachNames(roster)
	for i := range batches {
		batches[i].CoachName = coachDisplay(batches[i].CoachID, names)
	}
	return batches
}

func coachDisplay(coachID string, names map[string]string) string {
	if name, ok := names[coachID]; ok && name != "" {
		return name
	}
	if len(coachID) > 8 {
		return coachID[:8]
	}
	return coachID
}
