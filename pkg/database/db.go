package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Branch represents the branches table
type Branch struct {
	ID     string `gorm:"primaryKey" json:"id"`
	ClubID string `gorm:"index" json:"club_id"`
	Name   string `gorm:"not null" json:"name"`
}

// Group represents the groups table
type Group struct {
	ID       string `gorm:"primaryKey" json:"id"`
	BranchID string `gorm:"index;not null" json:"branch_id"`
	Name     string `gorm:"not null" json:"name"`
}

// Coach represents the coaches table
type Coach struct {
	ID        string `gorm:"primaryKey" json:"id"`
	BranchID  string `gorm:"index" json:"branch_id"`
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
}

// GroupCoach represents the group_coaches roster table; Role is MAIN for the
// group's head coach, ASSISTANT otherwise.
type GroupCoach struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	GroupID string `gorm:"uniqueIndex:idx_group_coach;not null" json:"group_id"`
	CoachID string `gorm:"uniqueIndex:idx_group_coach;not null" json:"coach_id"`
	Role    string `gorm:"default:ASSISTANT" json:"role"`
}

// ScheduleRecord represents the schedule_records table: one persisted weekly
// training slot. Times are zero-padded "HH:MM", dates ISO "YYYY-MM-DD", kept
// as strings to match the wire format exactly.
type ScheduleRecord struct {
	ScheduleID string `gorm:"primaryKey" json:"schedule_id"`
	GroupID    string `gorm:"index;not null" json:"group_id"`
	CoachID    string `gorm:"index;not null" json:"coach_id"`
	BranchID   string `gorm:"index;not null" json:"branch_id"`

	DayOfWeek string `gorm:"not null" json:"day_of_week"`
	StartTime string `gorm:"not null" json:"start_time"`
	EndTime   string `gorm:"not null" json:"end_time"`

	StartDate string `gorm:"not null" json:"start_date"`
	EndDate   string `gorm:"not null" json:"end_date"`

	ScheduleType string `gorm:"not null" json:"schedule_type"`
	Status       string `gorm:"index;default:ACTIVE" json:"status"`

	Substitution        bool   `gorm:"default:false" json:"substitution"`
	SubstitutionCoachID string `json:"substitution_coach_id"`
}

// InitDB initializes the database connection and migrates the schema.
// A non-empty databaseURL selects Postgres; otherwise SQLite at dataPath.
func InitDB(databaseURL, dataPath string) *gorm.DB {
	var db *gorm.DB
	var err error

	if databaseURL != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  databaseURL,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		if dataPath == "" {
			dataPath = "schedule.db"
		}
		db, err = gorm.Open(sqlite.Open(dataPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(&Branch{}, &Group{}, &Coach{}, &GroupCoach{}, &ScheduleRecord{})

	return db
}
