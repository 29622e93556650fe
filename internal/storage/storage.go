package storage

import (
	"context"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"
)

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	List(ctx context.Context, req *dto.ListJobsRequest) ([]*models.Job, error)
	Count(ctx context.Context, req *dto.ListJobsRequest) (int, error)
	GetByID(ctx context.Context, id int) (*models.Job, error)
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	Update(ctx context.Context, id int, req *dto.UpdateJobRequest) (*models.Job, error)
	UpdateStatus(ctx context.Context, id int, status models.JobStatus) (*models.Job, error)
	Delete(ctx context.Context, id int) error
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	// List returns rows matching the filter, each carrying the parent
	// job's position. Ordering is left to the caller.
	List(ctx context.Context, req *dto.ListApplicationsRequest) ([]*models.Application, error)
	GetByID(ctx context.Context, id int) (*models.Application, error)
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	Update(ctx context.Context, id int, req *dto.UpdateApplicationRequest) (*models.Application, error)
	Delete(ctx context.Context, id int) error
	// CountByJobIDs returns the number of applications per job id.
	CountByJobIDs(ctx context.Context, jobIDs []int) (map[int]int, error)
	// ListByJobIDs returns the full application rows grouped by job id.
	ListByJobIDs(ctx context.Context, jobIDs []int) (map[int][]*models.Application, error)
}

// AdminRepository defines the interface for admin account operations.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Create(ctx context.Context, email, passwordHash string) (*models.Admin, error)
}

// StatsRepository collects the dashboard counters.
type StatsRepository interface {
	Collect(ctx context.Context) (*models.Stats, error)
}

// FileStore abstracts the uploaded-CV filesystem.
type FileStore interface {
	Save(name string, data []byte) (url string, fileName string, err error)
	Delete(fileName string) error
	Open(relPath string) ([]byte, string, error)
}
