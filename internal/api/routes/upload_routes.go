// internal/api/routes/upload_routes.go
package routes

import (
	"github.com/codescope-coders/codescope-rework/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUploadRoutes registers CV upload, deletion and file serving.
func RegisterUploadRoutes(
	rg *gin.RouterGroup,
	uploadHandler handlers.UploadHandlerInterface,
) {
	rg.POST("/upload", uploadHandler.UploadCv)
	rg.DELETE("/upload", uploadHandler.DeleteCv)
	rg.GET("/uploads/*filepath", uploadHandler.ServeUpload)
}
