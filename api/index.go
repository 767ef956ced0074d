package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sportcrm/club-schedule-api/internal/config"
	"github.com/sportcrm/club-schedule-api/internal/logger"
	"github.com/sportcrm/club-schedule-api/pkg/database"
	"github.com/sportcrm/club-schedule-api/pkg/handlers"
)

var r *gin.Engine

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)

	db := database.InitDB(cfg.DatabaseURL, cfg.DataPath)
	h := &handlers.Handler{DB: db, Log: logger.New(true)}

	r = handlers.NewRouter(h, strings.Split(cfg.CORSOrigins, ","))
}

// Handler is the entry point for serverless Go runtimes
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
