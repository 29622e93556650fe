package services

import (
	"context"
	"strings"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/storage"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"

	"go.uber.org/zap"
)

type jobService struct {
	jobRepo storage.JobRepository
	appRepo storage.ApplicationRepository
	logger  *zap.Logger
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository, appRepo storage.ApplicationRepository, logger *zap.Logger) JobService {
	return &jobService{jobRepo: jobRepo, appRepo: appRepo, logger: logger}
}

// ListJobs returns jobs ordered open-first then newest-first. Pagination
// applies only when both page and limit are in the request; the returned
// Pagination is nil otherwise.
func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]*models.Job, *dto.Pagination, error) {
	jobs, err := s.jobRepo.List(ctx, req)
	if err != nil {
		s.logger.Error("listing jobs", zap.Error(err))
		return nil, nil, mapRepoError(err, "listing jobs")
	}

	var pagination *dto.Pagination
	if req.Paginated() {
		total, err := s.jobRepo.Count(ctx, req)
		if err != nil {
			s.logger.Error("counting jobs", zap.Error(err))
			return nil, nil, mapRepoError(err, "counting jobs")
		}
		totalPages := (total + *req.Limit - 1) / *req.Limit
		pagination = &dto.Pagination{
			Page:       *req.Page,
			Limit:      *req.Limit,
			Total:      total,
			TotalPages: totalPages,
		}
	}

	if err := s.attachApplicationFields(ctx, jobs, req); err != nil {
		return nil, nil, err
	}
	return jobs, pagination, nil
}

// attachApplicationFields fills in the requested computed fields. The
// embedded list wins over the bare count when both are asked for.
func (s *jobService) attachApplicationFields(ctx context.Context, jobs []*models.Job, req *dto.ListJobsRequest) error {
	if len(jobs) == 0 {
		return nil
	}

	jobIDs := make([]int, len(jobs))
	for i, job := range jobs {
		jobIDs[i] = job.ID
	}

	switch {
	case req.IncludeApplications():
		grouped, err := s.appRepo.ListByJobIDs(ctx, jobIDs)
		if err != nil {
			s.logger.Error("loading job applications", zap.Error(err))
			return mapRepoError(err, "loading job applications")
		}
		for _, job := range jobs {
			apps := grouped[job.ID]
			if apps == nil {
				apps = []*models.Application{}
			}
			job.Applications = apps
		}
	case req.IncludeTotalApplications():
		counts, err := s.appRepo.CountByJobIDs(ctx, jobIDs)
		if err != nil {
			s.logger.Error("counting job applications", zap.Error(err))
			return mapRepoError(err, "counting job applications")
		}
		for _, job := range jobs {
			count := counts[job.ID]
			job.TotalApplications = &count
		}
	}
	return nil
}

func (s *jobService) GetJobByID(ctx context.Context, id int) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting job by ID")
	}
	return job, nil
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	verr := newValidationError()
	if strings.TrimSpace(req.Position) == "" {
		verr.add("position", "Position is required.")
	}
	if len(req.Requirements) == 0 {
		verr.add("requirements", "At least one requirement is required.")
	}
	if !verr.empty() {
		return nil, verr
	}

	job, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error("creating job", zap.Error(err))
		return nil, mapRepoError(err, "creating job")
	}
	return job, nil
}

func (s *jobService) UpdateJob(ctx context.Context, id int, req *dto.UpdateJobRequest) (*models.Job, error) {
	verr := newValidationError()
	if req.Position != nil && strings.TrimSpace(*req.Position) == "" {
		verr.add("position", "Position cannot be empty.")
	}
	if req.Requirements != nil && len(*req.Requirements) == 0 {
		verr.add("requirements", "At least one requirement is required.")
	}
	if !verr.empty() {
		return nil, verr
	}

	job, err := s.jobRepo.Update(ctx, id, req)
	if err != nil {
		return nil, mapRepoError(err, "updating job")
	}
	return job, nil
}

// ToggleJobStatus flips a job between AVAILABLE and CLOSED.
func (s *jobService) ToggleJobStatus(ctx context.Context, id int) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for status toggle")
	}

	next := models.JobStatusAvailable
	if job.Status == models.JobStatusAvailable {
		next = models.JobStatusClosed
	}

	updated, err := s.jobRepo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, mapRepoError(err, "toggling job status")
	}
	return updated, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id int) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "deleting job")
	}
	return nil
}
