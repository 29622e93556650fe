// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/codescope-coders/codescope-rework/config"
	"github.com/codescope-coders/codescope-rework/internal/api/handlers"
	"github.com/codescope-coders/codescope-rework/internal/app"
	"github.com/codescope-coders/codescope-rework/internal/database"
	"github.com/codescope-coders/codescope-rework/internal/logger"
	"github.com/codescope-coders/codescope-rework/internal/server"
	"github.com/codescope-coders/codescope-rework/internal/storage/files"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// @title           Careers Back Office API
// @version         1.0
// @description     HTTP JSON API for a careers site: public job listings and applications, admin triage dashboard.

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer zapLogger.Sync()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer dbPool.Close()

	if err := database.EnsureSchema(context.Background(), dbPool); err != nil {
		zapLogger.Fatal("applying database schema", zap.Error(err))
	}

	// Stats caching degrades gracefully without Redis.
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Warn("redis unavailable, continuing without stats cache", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	validate := handlers.NewValidator()
	cvStore := files.NewCVStore(afero.NewOsFs(), cfg.Uploads.Dir)

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validate,
		Logger:      zapLogger,
		Files:       cvStore,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down")
}
