package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// NewRouter builds the gin engine with all routes wired. Shared by the
// server binary and the serverless entry so the surface never diverges.
func NewRouter(h *Handler, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Club Schedule API",
			"version": "1.0.0",
		})
	})

	org := r.Group("/organization")
	{
		org.GET("/schedules", h.ListSchedules)
		org.GET("/schedules/batches", h.ListBatches)
		org.GET("/schedules/week", h.WeekLayout)
		org.GET("/groups/:groupId/coaches", h.GroupCoaches)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/groups/:groupId/schedule", h.CreateBatch)
		admin.PUT("/groups/:groupId/schedule", h.UpdateBatch)
		admin.DELETE("/groups/:groupId/schedule", h.DeleteBatch)
	}

	return r
}
