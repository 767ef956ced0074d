package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sportcrm/club-schedule-api/pkg/database"
	"github.com/sportcrm/club-schedule-api/pkg/models"
)

func testRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&database.Branch{}, &database.Group{}, &database.Coach{},
		&database.GroupCoach{}, &database.ScheduleRecord{},
	); err != nil {
		t.Fatalf("could not migrate test database: %v", err)
	}

	db.Create(&database.Branch{ID: "b1", ClubID: "club1", Name: "Центральный"})
	db.Create(&database.Group{ID: "g1", BranchID: "b1", Name: "Юниоры"})
	db.Create(&database.Coach{ID: "c1", BranchID: "b1", FirstName: "Иван", LastName: "Петров"})
	db.Create(&database.GroupCoach{GroupID: "g1", CoachID: "c1", Role: "MAIN"})

	h := &Handler{DB: db, Log: zap.NewNop()}
	return NewRouter(h, []string{"*"}), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("could not encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testCommand() models.ScheduleBatchCommand {
	return models.ScheduleBatchCommand{
		CoachID:   "c1",
		Type:      models.TypeRegular,
		StartDate: "2025-01-01",
		EndDate:   "2025-06-01",
		Slots: []models.DaySlot{
			{DayOfWeek: models.Monday, StartTime: "17:00", EndTime: "18:30"},
			{DayOfWeek: models.Wednesday, StartTime: "17:00", EndTime: "18:30"},
		},
	}
}

func TestCreateListCancelRoundTrip(t *testing.T) {
	r, _ := testRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/admin/groups/g1/schedule", testCommand()); w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 from create, got %d: %s", w.Code, w.Body.String())
	}

	w := doJSON(t, r, http.MethodGet, "/organization/schedules?group-id=g1&status=ACTIVE", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 from list, got %d", w.Code)
	}
	var slots []models.ScheduleSlot
	if err := json.Unmarshal(w.Body.Bytes(), &slots); err != nil {
		t.Fatalf("could not decode slots: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("Expected 2 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.ScheduleID == "" || s.BranchID != "b1" || s.Status != models.StatusActive {
			t.Errorf("Slot not fully populated: %+v", s)
		}
	}

	key := models.BatchKey{CoachID: "c1", Type: models.TypeRegular, StartDate: "2025-01-01", EndDate: "2025-06-01"}
	if w := doJSON(t, r, http.MethodDelete, "/admin/groups/g1/schedule", key); w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204 from delete, got %d: %s", w.Code, w.Body.String())
	}

	// Delete cancels, it does not remove rows.
	w = doJSON(t, r, http.MethodGet, "/organization/schedules?group-id=g1&status=CANCELLED", nil)
	var cancelled []models.ScheduleSlot
	if err := json.Unmarshal(w.Body.Bytes(), &cancelled); err != nil {
		t.Fatalf("could not decode cancelled slots: %v", err)
	}
	if len(cancelled) != 2 {
		t.Errorf("Expected 2 cancelled slots, got %d", len(cancelled))
	}

	w = doJSON(t, r, http.MethodGet, "/organization/schedules?group-id=g1&status=ACTIVE", nil)
	var active []models.ScheduleSlot
	_ = json.Unmarshal(w.Body.Bytes(), &active)
	if len(active) != 0 {
		t.Errorf("Expected no active slots after cancel, got %d", len(active))
	}
}

func TestCreateBatch_ValidationErrors(t *testing.T) {
	r, _ := testRouter(t)

	cmd := testCommand()
	cmd.Slots[0].StartTime = "18:00"
	cmd.Slots[0].EndTime = "17:00"

	w := doJSON(t, r, http.MethodPost, "/admin/groups/g1/schedule", cmd)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for invalid time range, got %d", w.Code)
	}

	var body struct {
		Errors []struct {
			Code      string `json:"code"`
			DayOfWeek string `json:"dayOfWeek"`
			Message   string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode error body: %v", err)
	}
	if len(body.Errors) != 1 || body.Errors[0].Code != "INVALID_TIME_RANGE" || body.Errors[0].DayOfWeek != "MONDAY" {
		t.Errorf("Unexpected validation body: %+v", body.Errors)
	}
}

func TestListBatches_DecoratedWithCoachName(t *testing.T) {
	r, _ := testRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/admin/groups/g1/schedule", testCommand()); w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 from create, got %d", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/organization/schedules/batches?group-id=g1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var batches []models.ScheduleBatch
	if err := json.Unmarshal(w.Body.Bytes(), &batches); err != nil {
		t.Fatalf("could not decode batches: %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("Expected 1 batch, got %d", len(batches))
	}
	if batches[0].Key != "c1_2025-01-01_2025-06-01_REGULAR" {
		t.Errorf("Unexpected batch key: %s", batches[0].Key)
	}
	if batches[0].CoachName != "Иван Петров (главный)" {
		t.Errorf("Expected decorated coach name, got %s", batches[0].CoachName)
	}
	if len(batches[0].Schedules) != 2 {
		t.Errorf("Expected 2 slots in batch, got %d", len(batches[0].Schedules))
	}
}

func TestUpdateBatch_ReplacesWholeWeek(t *testing.T) {
	r, _ := testRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/admin/groups/g1/schedule", testCommand()); w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 from create, got %d", w.Code)
	}

	updated := testCommand()
	updated.Slots = []models.DaySlot{
		{DayOfWeek: models.Friday, StartTime: "16:00", EndTime: "17:30"},
	}
	if w := doJSON(t, r, http.MethodPut, "/admin/groups/g1/schedule", updated); w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204 from update, got %d: %s", w.Code, w.Body.String())
	}

	w := doJSON(t, r, http.MethodGet, "/organization/schedules?group-id=g1&status=ACTIVE", nil)
	var slots []models.ScheduleSlot
	if err := json.Unmarshal(w.Body.Bytes(), &slots); err != nil {
		t.Fatalf("could not decode slots: %v", err)
	}
	if len(slots) != 1 || slots[0].DayOfWeek != models.Friday {
		t.Errorf("Expected full replacement with single Friday slot, got %+v", slots)
	}
}

func TestWeekLayout_Endpoint(t *testing.T) {
	r, _ := testRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/admin/groups/g1/schedule", testCommand()); w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 from create, got %d", w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/organization/schedules/week?group-id=g1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body struct {
		Days map[string][]struct {
			Top    float64 `json:"top"`
			Height float64 `json:"height"`
		} `json:"days"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode layout: %v", err)
	}
	if len(body.Days) != 7 {
		t.Errorf("Expected 7 day buckets, got %d", len(body.Days))
	}
	monday := body.Days["MONDAY"]
	if len(monday) != 1 || monday[0].Top != 560 || monday[0].Height != 84 {
		t.Errorf("Unexpected Monday geometry: %+v", monday)
	}
}

func TestDeleteBatch_UnknownKey(t *testing.T) {
	r, _ := testRouter(t)

	key := models.BatchKey{CoachID: "nobody", Type: models.TypeRegular, StartDate: "2025-01-01", EndDate: "2025-06-01"}
	if w := doJSON(t, r, http.MethodDelete, "/admin/groups/g1/schedule", key); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown batch key, got %d", w.Code)
	}
}

func TestListSchedules_RequiresScope(t *testing.T) {
	r, _ := testRouter(t)

	if w := doJSON(t, r, http.MethodGet, "/organization/schedules", nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without group-id or branch-id, got %d", w.Code)
	}
}
