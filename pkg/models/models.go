package models

// DayOfWeek is an uppercase English weekday name. The week is Monday-first
// for all display and grouping purposes.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// Days lists the week Monday-first. Iteration over schedule days always goes
// through this slice, never over a map.
var Days = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ScheduleType classifies a batch as ongoing recurring or bounded temporary.
type ScheduleType string

const (
	TypeRegular   ScheduleType = "REGULAR"
	TypeTemporary ScheduleType = "TEMPORARY"
)

// ScheduleStatus is the lifecycle state of a slot. Cancelled slots stay in
// the store and render dimmed; they are never hard-deleted.
type ScheduleStatus string

const (
	StatusActive    ScheduleStatus = "ACTIVE"
	StatusCancelled ScheduleStatus = "CANCELLED"
)

// ScheduleSlot is a single weekday/time training occurrence record as it
// travels on the wire. Times are "HH:MM" or "HH:MM:SS", dates "YYYY-MM-DD".
type ScheduleSlot struct {
	ScheduleID string `json:"scheduleId"`
	GroupID    string `json:"groupId"`
	CoachID    string `json:"coachId"`
	BranchID   string `json:"branchId"`

	DayOfWeek DayOfWeek `json:"dayOfWeek"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`

	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	ScheduleType ScheduleType   `json:"scheduleType"`
	Status       ScheduleStatus `json:"status"`

	Substitution        bool   `json:"substitution"`
	SubstitutionCoachID string `json:"substitutionCoachId,omitempty"`
}

// DaySlot is the per-day time range inside a batch command.
type DaySlot struct {
	DayOfWeek DayOfWeek `json:"dayOfWeek" binding:"required"`
	StartTime string    `json:"startTime" binding:"required"`
	EndTime   string    `json:"endTime" binding:"required"`
}

// EditableSlot is one weekday row of a draft. A draft always carries exactly
// seven of these, Monday-first; Enabled marks whether the day participates.
type EditableSlot struct {
	DayOfWeek DayOfWeek `json:"dayOfWeek"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Enabled   bool      `json:"enabled"`
}

// ScheduleBatchCommand is the create/update payload: the batch identity plus
// the full weekly slot set it carries. The Enabled flag never reaches the
// wire; a command lists participating days only.
type ScheduleBatchCommand struct {
	CoachID   string       `json:"coachId" binding:"required"`
	Type      ScheduleType `json:"type" binding:"required"`
	StartDate string       `json:"startDate" binding:"required"`
	EndDate   string       `json:"endDate" binding:"required"`
	Slots     []DaySlot    `json:"slots" binding:"required"`
}

// BatchKey identifies a batch without its slots; the delete payload.
type BatchKey struct {
	CoachID   string       `json:"coachId" binding:"required"`
	Type      ScheduleType `json:"type" binding:"required"`
	StartDate string       `json:"startDate" binding:"required"`
	EndDate   string       `json:"endDate" binding:"required"`
}

// ScheduleBatch is a derived grouping of slots sharing one coach, one
// validity period and one type. Batches are recomputed from the slot list on
// every pass and never cached across list changes.
type ScheduleBatch struct {
	Key       string         `json:"key"`
	CoachID   string         `json:"coachId"`
	CoachName string         `json:"coachName,omitempty"`
	Type      ScheduleType   `json:"type"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Schedules []ScheduleSlot `json:"schedules"`
}

// CoachOption is one roster entry, used to decorate batches with
// human-readable coach names.
type CoachOption struct {
	CoachID string `json:"coachId"`
	Name    string `json:"name"`
}
