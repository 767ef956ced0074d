package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sportcrm/club-schedule-api/pkg/database"
	"github.com/sportcrm/club-schedule-api/pkg/schedule"
)

// ListSchedules returns the flat slot list for a group or branch, optionally
// narrowed by status (ACTIVE, CANCELLED; absent or ALL returns everything).
func (h *Handler) ListSchedules(c *gin.Context) {
	filter := database.SlotFilter{
		GroupID:  c.Query("group-id"),
		BranchID: c.Query("branch-id"),
		Status:   c.Query("status"),
	}
	if filter.GroupID == "" && filter.BranchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group-id or branch-id is required"})
		return
	}

	slots, err := database.ListSlots(h.DB, filter)
	if err != nil {
		h.Log.Error("list schedules failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list schedules"})
		return
	}

	// Zero slots is a valid "nothing scheduled" state, not an error.
	c.JSON(http.StatusOK, slots)
}

// ListBatches groups a group's slots into schedule batches and decorates
// them with coach names from the roster.
func (h *Handler) ListBatches(c *gin.Context) {
	groupID := c.Query("group-id")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group-id is required"})
		return
	}

	slots, err := database.ListSlots(h.DB, database.SlotFilter{
		GroupID: groupID,
		Status:  c.Query("status"),
	})
	if err != nil {
		h.Log.Error("list batches failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list schedules"})
		return
	}

	roster, err := database.Roster(h.DB, groupID)
	if err != nil {
		// Names are decoration; batches still render with raw coach ids.
		h.Log.Warn("roster lookup failed", zap.String("group", groupID), zap.Error(err))
		roster = nil
	}

	batches := schedule.DecorateBatches(schedule.GroupIntoBatches(slots), roster)
	c.JSON(http.StatusOK, batches)
}

// WeekLayout runs the week grid layout engine over a group's or branch's
// slots. Query knobs: start-hour, end-hour, unit-height (defaults 7, 22, 56).
func (h *Handler) WeekLayout(c *gin.Context) {
	filter := database.SlotFilter{
		GroupID:  c.Query("group-id"),
		BranchID: c.Query("branch-id"),
		Status:   c.Query("status"),
	}
	if filter.GroupID == "" && filter.BranchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group-id or branch-id is required"})
		return
	}

	win := schedule.Window{
		StartHour: intQuery(c, "start-hour", schedule.DefaultStartHour),
		EndHour:   intQuery(c, "end-hour", schedule.DefaultEndHour),
	}
	unitHeight := floatQuery(c, "unit-height", schedule.DefaultUnitHeight)
	if win.EndHour <= win.StartHour {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end-hour must be after start-hour"})
		return
	}

	slots, err := database.ListSlots(h.DB, filter)
	if err != nil {
		h.Log.Error("week layout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list schedules"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window": gin.H{"startHour": win.StartHour, "endHour": win.EndHour},
		"days":   schedule.LayoutWeek(slots, win, unitHeight),
	})
}

// GroupCoaches returns the coach roster of a group.
func (h *Handler) GroupCoaches(c *gin.Context) {
	roster, err := database.Roster(h.DB, c.Param("groupId"))
	if err != nil {
		h.Log.Error("roster failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load coaches"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coaches": roster})
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func floatQuery(c *gin.Context, name string, def float64) float64 {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return f
}
