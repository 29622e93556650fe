// internal/api/routes/routes.go
package routes

import (
	"github.com/codescope-coders/codescope-rework/internal/api/handlers"
	"github.com/codescope-coders/codescope-rework/internal/api/middleware"
	"github.com/codescope-coders/codescope-rework/internal/app"
	"github.com/codescope-coders/codescope-rework/internal/services"
	"github.com/codescope-coders/codescope-rework/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	root := router.Group("")

	// --- Repositories ---
	jobRepo := postgres.NewJobRepo(app.DBPool)
	appRepo := postgres.NewApplicationRepo(app.DBPool)
	adminRepo := postgres.NewAdminRepo(app.DBPool)
	statsRepo := postgres.NewStatsRepo(app.DBPool)

	// --- Services ---
	jobService := services.NewJobService(jobRepo, appRepo, app.Logger)
	appService := services.NewApplicationService(appRepo, jobRepo, app.Files, app.Logger)
	adminService := services.NewAdminService(adminRepo, app.Config.JWT.Secret, app.Config.JWT.Expiration, app.Logger)
	statsService := services.NewStatsService(statsRepo, app.RedisClient, app.Logger)

	// --- Handlers ---
	jobHandler := handlers.NewJobHandler(jobService, app.Validator, app.Logger)
	appHandler := handlers.NewApplicationHandler(appService, app.Validator, app.Logger)
	authHandler := handlers.NewAuthHandler(adminService, app.Validator, app.Logger, app.Config.JWT.Expiration)
	uploadHandler := handlers.NewUploadHandler(app.Files, app.Logger)
	statsHandler := handlers.NewStatsHandler(statsService, app.Logger)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(adminService)
	bodyLimit := middleware.BodyLimit()

	// --- Register Resource Routes ---
	RegisterJobRoutes(root, jobHandler, authMiddleware, bodyLimit)
	RegisterApplicationRoutes(root, appHandler, authMiddleware, bodyLimit)
	RegisterAuthRoutes(root, authHandler, authMiddleware)
	RegisterUploadRoutes(root, uploadHandler)
	RegisterStatsRoutes(root, statsHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
