package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/sportcrm/club-schedule-api/internal/config"
	"github.com/sportcrm/club-schedule-api/pkg/database"
)

// Seeds a demo branch with two groups, two coaches and a regular weekly
// schedule so the consoles have something to render out of the box.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: could not load config: %v\n", err)
		os.Exit(1)
	}

	db := database.InitDB(cfg.DatabaseURL, cfg.DataPath)

	branch := database.Branch{ID: uuid.NewString(), ClubID: uuid.NewString(), Name: "Центральный филиал"}
	if err := db.Create(&branch).Error; err != nil {
		fmt.Printf("Error: could not seed branch: %v\n", err)
		os.Exit(1)
	}

	coachA := database.Coach{ID: uuid.NewString(), BranchID: branch.ID, FirstName: "Иван", LastName: "Петров"}
	coachB := database.Coach{ID: uuid.NewString(), BranchID: branch.ID, FirstName: "Анна", LastName: "Сидорова"}
	db.Create(&coachA)
	db.Create(&coachB)

	juniors := database.Group{ID: uuid.NewString(), BranchID: branch.ID, Name: "Юниоры"}
	seniors := database.Group{ID: uuid.NewString(), BranchID: branch.ID, Name: "Старшая группа"}
	db.Create(&juniors)
	db.Create(&seniors)

	db.Create(&database.GroupCoach{GroupID: juniors.ID, CoachID: coachA.ID, Role: "MAIN"})
	db.Create(&database.GroupCoach{GroupID: juniors.ID, CoachID: coachB.ID, Role: "ASSISTANT"})
	db.Create(&database.GroupCoach{GroupID: seniors.ID, CoachID: coachB.ID, Role: "MAIN"})

	weekly := []struct {
		day   string
		start string
		end   string
	}{
		{"MONDAY", "17:00", "18:30"},
		{"WEDNESDAY", "17:00", "18:30"},
		{"FRIDAY", "16:00", "17:30"},
	}
	for _, w := range weekly {
		db.Create(&database.ScheduleRecord{
			ScheduleID:   uuid.NewString(),
			GroupID:      juniors.ID,
			CoachID:      coachA.ID,
			BranchID:     branch.ID,
			DayOfWeek:    w.day,
			StartTime:    w.start,
			EndTime:      w.end,
			StartDate:    "2025-01-01",
			EndDate:      "2025-06-01",
			ScheduleType: "REGULAR",
			Status:       "ACTIVE",
		})
	}

	fmt.Printf("Seeded branch %s\n  group %s (Юниоры)\n  group %s (Старшая группа)\n", branch.ID, juniors.ID, seniors.ID)
}
