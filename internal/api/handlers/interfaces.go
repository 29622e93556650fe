// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	ToggleJobStatus(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	ListApplications(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	SubmitApplication(c *gin.Context)
	UpdateApplication(c *gin.Context)
	DeleteApplication(c *gin.Context)
}

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	Login(c *gin.Context)
	CheckAuth(c *gin.Context)
}

// UploadHandlerInterface defines the methods needed by the upload routes.
type UploadHandlerInterface interface {
	UploadCv(c *gin.Context)
	DeleteCv(c *gin.Context)
	ServeUpload(c *gin.Context)
}

// StatsHandlerInterface defines the methods needed by the stats routes.
type StatsHandlerInterface interface {
	GetStats(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ AuthHandlerInterface = (*AuthHandler)(nil)
var _ UploadHandlerInterface = (*UploadHandler)(nil)
var _ StatsHandlerInterface = (*StatsHandler)(nil)
