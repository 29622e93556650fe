// internal/api/routes/application_routes.go
package routes

import (
	"github.com/codescope-coders/codescope-rework/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to applications.
// Submission is public; everything else requires auth.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	appHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
	bodyLimit gin.HandlerFunc,
) {
	applications := rg.Group("/applications")
	{
		applications.GET("", authMiddleware, appHandler.ListApplications)
		applications.GET("/:id", authMiddleware, appHandler.GetApplicationByID)
		applications.POST("", bodyLimit, appHandler.SubmitApplication)
		applications.PUT("/:id", authMiddleware, bodyLimit, appHandler.UpdateApplication)
		applications.DELETE("/:id", authMiddleware, appHandler.DeleteApplication)
	}
}
