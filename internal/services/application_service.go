package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/storage"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"

	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minGraduationYear   = 1950
	maxApplicationLinks = 3
)

type applicationService struct {
	appRepo storage.ApplicationRepository
	jobRepo storage.JobRepository
	files   storage.FileStore
	logger  *zap.Logger
	now     func() time.Time
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository, files storage.FileStore, logger *zap.Logger) ApplicationService {
	return &applicationService{
		appRepo: appRepo,
		jobRepo: jobRepo,
		files:   files,
		logger:  logger,
		now:     time.Now,
	}
}

// ListApplications returns the filtered triage list, sorted by salary mode
// (when set), then status, then newest first.
func (s *applicationService) ListApplications(ctx context.Context, req *dto.ListApplicationsRequest) ([]*models.Application, error) {
	apps, err := s.appRepo.List(ctx, req)
	if err != nil {
		s.logger.Error("listing applications", zap.Error(err))
		return nil, mapRepoError(err, "listing applications")
	}
	SortApplications(apps, req.ExpectedSalary)
	return apps, nil
}

func (s *applicationService) GetApplicationByID(ctx context.Context, id int) (*models.Application, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting application by ID")
	}
	return app, nil
}

// SubmitApplication validates a public submission and stores it. The target
// job is checked first: a missing job is NotFound and a closed job is a
// conflict, before any field validation runs. Field errors are collected and
// returned together.
func (s *applicationService) SubmitApplication(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for application")
	}
	if job.Status != models.JobStatusAvailable {
		return nil, ErrJobUnavailable
	}

	if verr := s.validateSubmission(req); verr != nil {
		return nil, verr
	}

	app, err := s.appRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error("creating application", zap.Error(err), zap.Int("jobId", req.JobID))
		return nil, mapRepoError(err, "creating application")
	}
	return app, nil
}

func (s *applicationService) validateSubmission(req *dto.CreateApplicationRequest) *ValidationError {
	verr := newValidationError()

	if strings.TrimSpace(req.FullName) == "" {
		verr.add("fullName", "Full name is required.")
	}
	switch {
	case strings.TrimSpace(req.Email) == "":
		verr.add("email", "Email is required.")
	case !emailPattern.MatchString(req.Email):
		verr.add("email", "Invalid email format.")
	}
	if strings.TrimSpace(req.CurrentCity) == "" {
		verr.add("currentCity", "Current city is required.")
	}
	if strings.TrimSpace(req.Nationality) == "" {
		verr.add("nationality", "Nationality is required.")
	}
	if strings.TrimSpace(req.DateOfBirth) == "" {
		verr.add("date_of_birth", "Date of birth is required.")
	}
	if strings.TrimSpace(req.CvURL) == "" {
		verr.add("cvUrl", "CV is required.")
	}
	if req.ExpectedSalary != nil && !models.ExpectedSalary(*req.ExpectedSalary).IsValid() {
		verr.add("expectedSalary", "Invalid salary range.")
	}
	if req.HighestEducationLevel != nil && !models.EducationLevel(*req.HighestEducationLevel).IsValid() {
		verr.add("highestEducationLevel", "Invalid education level.")
	}
	if req.GraduationYear != nil {
		year := *req.GraduationYear
		if year < minGraduationYear || year > s.now().Year()+10 {
			verr.add("graduationYear", "Invalid graduation year.")
		}
	}
	if req.YearsOfExperience != nil && *req.YearsOfExperience < 0 {
		verr.add("yearsOfExperience", "Invalid years of experience.")
	}
	if len(req.Links) > maxApplicationLinks {
		verr.add("links", "A maximum of 3 links is allowed.")
	}

	if verr.empty() {
		return nil
	}
	return verr
}

// UpdateApplication applies a partial update. Provided fields are validated
// with the same rules as submission; nil fields are untouched.
func (s *applicationService) UpdateApplication(ctx context.Context, id int, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	if verr := validateApplicationUpdate(req, s.now()); verr != nil {
		return nil, verr
	}

	app, err := s.appRepo.Update(ctx, id, req)
	if err != nil {
		return nil, mapRepoError(err, "updating application")
	}
	return app, nil
}

func validateApplicationUpdate(req *dto.UpdateApplicationRequest, now time.Time) *ValidationError {
	verr := newValidationError()

	if req.Status != nil && !models.ApplicationStatus(*req.Status).IsValid() {
		verr.add("status", "Invalid status.")
	}
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		verr.add("fullName", "Full name cannot be empty.")
	}
	if req.Email != nil {
		switch {
		case strings.TrimSpace(*req.Email) == "":
			verr.add("email", "Email cannot be empty.")
		case !emailPattern.MatchString(*req.Email):
			verr.add("email", "Invalid email format.")
		}
	}
	if req.CurrentCity != nil && strings.TrimSpace(*req.CurrentCity) == "" {
		verr.add("currentCity", "Current city cannot be empty.")
	}
	if req.Nationality != nil && strings.TrimSpace(*req.Nationality) == "" {
		verr.add("nationality", "Nationality cannot be empty.")
	}
	if req.DateOfBirth != nil && strings.TrimSpace(*req.DateOfBirth) == "" {
		verr.add("date_of_birth", "Date of birth cannot be empty.")
	}
	if req.CvURL != nil && strings.TrimSpace(*req.CvURL) == "" {
		verr.add("cvUrl", "CV cannot be empty.")
	}
	if req.ExpectedSalary != nil && !models.ExpectedSalary(*req.ExpectedSalary).IsValid() {
		verr.add("expectedSalary", "Invalid salary range.")
	}
	if req.HighestEducationLevel != nil && !models.EducationLevel(*req.HighestEducationLevel).IsValid() {
		verr.add("highestEducationLevel", "Invalid education level.")
	}
	if req.GraduationYear != nil {
		year := *req.GraduationYear
		if year < minGraduationYear || year > now.Year()+10 {
			verr.add("graduationYear", "Invalid graduation year.")
		}
	}
	if req.YearsOfExperience != nil && *req.YearsOfExperience < 0 {
		verr.add("yearsOfExperience", "Invalid years of experience.")
	}
	if req.Links != nil && len(*req.Links) > maxApplicationLinks {
		verr.add("links", "A maximum of 3 links is allowed.")
	}

	if verr.empty() {
		return nil
	}
	return verr
}

// DeleteApplication removes the row, then tries to remove the stored CV.
// File cleanup failures are logged and swallowed; the record is already gone.
func (s *applicationService) DeleteApplication(ctx context.Context, id int) error {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err, "fetching application for delete")
	}

	if err := s.appRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "deleting application")
	}

	if app.CvURL != "" {
		if err := s.files.Delete(app.CvURL); err != nil && !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("removing cv file after delete",
				zap.Int("applicationId", id), zap.String("cvUrl", app.CvURL), zap.Error(err))
		}
	}
	return nil
}
