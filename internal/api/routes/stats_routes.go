// internal/api/routes/stats_routes.go
package routes

import (
	"github.com/codescope-coders/codescope-rework/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterStatsRoutes registers the dashboard statistics route.
func RegisterStatsRoutes(
	rg *gin.RouterGroup,
	statsHandler handlers.StatsHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	rg.GET("/stats", authMiddleware, statsHandler.GetStats)
}
