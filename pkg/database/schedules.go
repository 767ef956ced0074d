package database

import (
	"github.com/google/uuid"
	"github.com/sportcrm/club-schedule-api/pkg/models"
	"gorm.io/gorm"
)

// ToSlot converts a persisted record to its wire shape.
func (r ScheduleRecord) ToSlot() models.ScheduleSlot {
	return models.ScheduleSlot{
		ScheduleID:          r.ScheduleID,
		GroupID:             r.GroupID,
		CoachID:             r.CoachID,
		BranchID:            r.BranchID,
		DayOfWeek:           models.DayOfWeek(r.DayOfWeek),
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		ScheduleType:        models.ScheduleType(r.ScheduleType),
		Status:              models.ScheduleStatus(r.Status),
		Substitution:        r.Substitution,
		SubstitutionCoachID: r.SubstitutionCoachID,
	}
}

// SlotFilter narrows a slot listing. Zero-value fields are ignored; an empty
// or ALL status returns active and cancelled rows alike.
type SlotFilter struct {
	GroupID  string
	BranchID string
	Status   string
}

// ListSlots returns slot records matching the filter, oldest first by start
// date so batch grouping sees a stable first-seen order.
func ListSlots(db *gorm.DB, f SlotFilter) ([]models.ScheduleSlot, error) {
	q := db.Model(&ScheduleRecord{}).Order("start_date, coach_id, day_of_week")
	if f.GroupID != "" {
		q = q.Where("group_id = ?", f.GroupID)
	}
	if f.BranchID != "" {
		q = q.Where("branch_id = ?", f.BranchID)
	}
	if f.Status != "" && f.Status != "ALL" {
		q = q.Where("status = ?", f.Status)
	}

	var records []ScheduleRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}

	slots := make([]models.ScheduleSlot, 0, len(records))
	for _, r := range records {
		slots = append(slots, r.ToSlot())
	}
	return slots, nil
}

// Roster returns the coaches assigned to a group, the MAIN coach flagged in
// the display name the way the admin console shows it.
func Roster(db *gorm.DB, groupID string) ([]models.CoachOption, error) {
	var rows []struct {
		CoachID   string
		FirstName string
		LastName  string
		Role      string
	}
	err := db.Model(&GroupCoach{}).
		Select("group_coaches.coach_id, coaches.first_name, coaches.last_name, group_coaches.role").
		Joins("JOIN coaches ON coaches.id = group_coaches.coach_id").
		Where("group_coaches.group_id = ?", groupID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	roster := make([]models.CoachOption, 0, len(rows))
	for _, r := range rows {
		name := r.FirstName + " " + r.LastName
		if r.Role == "MAIN" {
			name += " (главный)"
		}
		roster = append(roster, models.CoachOption{CoachID: r.CoachID, Name: name})
	}
	return roster, nil
}

// CreateBatch inserts one ACTIVE record per command slot, all sharing the
// command's batch identity. The group's branch id is denormalized onto each
// record.
func CreateBatch(db *gorm.DB, groupID string, cmd models.ScheduleBatchCommand) error {
	var group Group
	if err := db.First(&group, "id = ?", groupID).Error; err != nil {
		return err
	}

	records := recordsFromCommand(group, cmd)
	return db.Create(&records).Error
}

// ReplaceBatch swaps the full weekly slot set for the command's batch key in
// one transaction: active rows under the key are removed, then the command's
// slots are inserted fresh. Updates are whole-batch replacements, never
// per-day patches.
func ReplaceBatch(db *gorm.DB, groupID string, cmd models.ScheduleBatchCommand) error {
	var group Group
	if err := db.First(&group, "id = ?", groupID).Error; err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(
			"group_id = ? AND coach_id = ? AND schedule_type = ? AND start_date = ? AND end_date = ? AND status = ?",
			groupID, cmd.CoachID, string(cmd.Type), cmd.StartDate, cmd.EndDate, string(models.StatusActive),
		).Delete(&ScheduleRecord{}).Error
		if err != nil {
			return err
		}

		records := recordsFromCommand(group, cmd)
		return tx.Create(&records).Error
	})
}

// CancelBatch marks every active record under the key CANCELLED. Rows are
// kept so cancelled slots stay listable and render dimmed. Returns the
// number of affected rows; zero means the key matched nothing.
func CancelBatch(db *gorm.DB, groupID string, key models.BatchKey) (int64, error) {
	res := db.Model(&ScheduleRecord{}).
		Where(
			"group_id = ? AND coach_id = ? AND schedule_type = ? AND start_date = ? AND end_date = ? AND status = ?",
			groupID, key.CoachID, string(key.Type), key.StartDate, key.EndDate, string(models.StatusActive),
		).
		Update("status", string(models.StatusCancelled))
	return res.RowsAffected, res.Error
}

func recordsFromCommand(group Group, cmd models.ScheduleBatchCommand) []ScheduleRecord {
	records := make([]ScheduleRecord, 0, len(cmd.Slots))
	for _, s := range cmd.Slots {
		records = append(records, ScheduleRecord{
			ScheduleID:   uuid.NewString(),
			GroupID:      group.ID,
			CoachID:      cmd.CoachID,
			BranchID:     group.BranchID,
			DayOfWeek:    string(s.DayOfWeek),
			StartTime:    s.StartTime,
			EndTime:      s.EndTime,
			StartDate:    cmd.StartDate,
			EndDate:      cmd.EndDate,
			ScheduleType: string(cmd.Type),
			Status:       string(models.StatusActive),
		})
	}
	return records
}
