// internal/api/routes/auth_routes.go
package routes

import (
	"github.com/codescope-coders/codescope-rework/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the admin login and token check routes.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	authHandler handlers.AuthHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	auth := rg.Group("/auth")
	{
		auth.POST("", authHandler.Login)
		auth.POST("/check", authMiddleware, authHandler.CheckAuth)
	}
}
