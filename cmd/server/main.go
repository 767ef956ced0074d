package main

import (
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sportcrm/club-schedule-api/internal/config"
	"github.com/sportcrm/club-schedule-api/internal/logger"
	"github.com/sportcrm/club-schedule-api/pkg/database"
	"github.com/sportcrm/club-schedule-api/pkg/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	zl := logger.New(cfg.IsProduction())
	defer zl.Sync()

	if os.Getenv("GIN_MODE") == "" && cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB(cfg.DatabaseURL, cfg.DataPath)
	h := &handlers.Handler{DB: db, Log: zl}

	r := handlers.NewRouter(h, strings.Split(cfg.CORSOrigins, ","))

	zl.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := r.Run(":" + cfg.Port); err != nil {
		zl.Fatal("could not run server", zap.Error(err))
	}
}
