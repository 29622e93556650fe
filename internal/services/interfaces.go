package services

import (
	"context"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"
)

// JobService defines the interface for job-related business logic.
type JobService interface {
	ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]*models.Job, *dto.Pagination, error)
	GetJobByID(ctx context.Context, id int) (*models.Job, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, id int, req *dto.UpdateJobRequest) (*models.Job, error)
	ToggleJobStatus(ctx context.Context, id int) (*models.Job, error)
	DeleteJob(ctx context.Context, id int) error
}

// ApplicationService defines the interface for application-related business logic.
type ApplicationService interface {
	ListApplications(ctx context.Context, req *dto.ListApplicationsRequest) ([]*models.Application, error)
	GetApplicationByID(ctx context.Context, id int) (*models.Application, error)
	SubmitApplication(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	UpdateApplication(ctx context.Context, id int, req *dto.UpdateApplicationRequest) (*models.Application, error)
	DeleteApplication(ctx context.Context, id int) error
}

// AdminService defines the interface for admin authentication.
type AdminService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*models.Admin, string, error)
	VerifyToken(tokenString string) (*AdminClaims, error)
}

// StatsService defines the interface for the dashboard counters.
type StatsService interface {
	GetStats(ctx context.Context) (*models.Stats, error)
}
