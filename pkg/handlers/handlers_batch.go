package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sportcrm/club-schedule-api/pkg/database"
	"github.com/sportcrm/club-schedule-api/pkg/models"
	"github.com/sportcrm/club-schedule-api/pkg/schedule"
)

// bindCommand decodes and semantically validates a batch command. The same
// rules the edit form runs live are re-run here; a draft rebuilt from the
// command feeds the validator so client and server can never disagree.
func (h *Handler) bindCommand(c *gin.Context) (models.ScheduleBatchCommand, bool) {
	var cmd models.ScheduleBatchCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return cmd, false
	}

	if errs := schedule.Validate(schedule.DraftFromCommand(cmd)); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationBody(errs)})
		return cmd, false
	}
	return cmd, true
}

func validationBody(errs []schedule.ValidationError) []gin.H {
	body := make([]gin.H, 0, len(errs))
	for _, e := range errs {
		item := gin.H{"code": e.Code, "message": e.Message()}
		if e.Day != "" {
			item["dayOfWeek"] = e.Day
		}
		body = append(body, item)
	}
	return body
}

// CreateBatch creates a new schedule batch for a group: one ACTIVE slot per
// command day.
func (h *Handler) CreateBatch(c *gin.Context) {
	groupID := c.Param("groupId")

	cmd, ok := h.bindCommand(c)
	if !ok {
		return
	}

	if err := database.CreateBatch(h.DB, groupID, cmd); err != nil {
		h.Log.Error("create batch failed", zap.String("group", groupID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create schedule"})
		return
	}

	h.Log.Info("batch created",
		zap.String("group", groupID),
		zap.String("coach", cmd.CoachID),
		zap.Int("days", len(cmd.Slots)))
	c.Status(http.StatusCreated)
}

// UpdateBatch replaces the full weekly slot set for the command's batch key.
func (h *Handler) UpdateBatch(c *gin.Context) {
	groupID := c.Param("groupId")

	cmd, ok := h.bindCommand(c)
	if !ok {
		return
	}

	if err := database.ReplaceBatch(h.DB, groupID, cmd); err != nil {
		h.Log.Error("update batch failed", zap.String("group", groupID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update schedule"})
		return
	}

	h.Log.Info("batch replaced",
		zap.String("group", groupID),
		zap.String("coach", cmd.CoachID),
		zap.Int("days", len(cmd.Slots)))
	c.Status(http.StatusNoContent)
}

// DeleteBatch cancels every active slot under the batch key carried in the
// request body. Records stay in the store with status CANCELLED.
func (h *Handler) DeleteBatch(c *gin.Context) {
	groupID := c.Param("groupId")

	var key models.BatchKey
	if err := c.ShouldBindJSON(&key); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	affected, err := database.CancelBatch(h.DB, groupID, key)
	if err != nil {
		h.Log.Error("delete batch failed", zap.String("group", groupID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete schedule"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule batch not found"})
		return
	}

	h.Log.Info("batch cancelled",
		zap.String("group", groupID),
		zap.String("coach", key.CoachID),
		zap.Int64("slots", affected))
	c.Status(http.StatusNoContent)
}
