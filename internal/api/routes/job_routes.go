// internal/api/routes/job_routes.go
package routes

import (
	"github.com/codescope-coders/codescope-rework/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs. Reads are public;
// writes require the provided authentication middleware.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
	bodyLimit gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)
		jobs.POST("", authMiddleware, bodyLimit, jobHandler.CreateJob)
		jobs.PUT("/:id", authMiddleware, bodyLimit, jobHandler.UpdateJob)
		jobs.PUT("/:id/toggle", authMiddleware, jobHandler.ToggleJobStatus)
		jobs.DELETE("/:id", authMiddleware, jobHandler.DeleteJob)
	}
}
