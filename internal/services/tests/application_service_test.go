package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/codescope-coders/codescope-rework/internal/mocks"
	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/services"
	"github.com/codescope-coders/codescope-rework/internal/storage"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApplicationServiceTest(t *testing.T) (context.Context, services.ApplicationService, *mocks.ApplicationRepository, *mocks.JobRepository, *mocks.FileStore) {
	t.Helper()
	appRepo := &mocks.ApplicationRepository{}
	jobRepo := &mocks.JobRepository{}
	files := &mocks.FileStore{}
	svc := services.NewApplicationService(appRepo, jobRepo, files, zap.NewNop())
	return context.Background(), svc, appRepo, jobRepo, files
}

func validSubmission(jobID int) *dto.CreateApplicationRequest {
	return &dto.CreateApplicationRequest{
		JobID:       jobID,
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		CurrentCity: "Lisbon",
		Nationality: "Portuguese",
		DateOfBirth: "1995-04-12",
		CvURL:       "/uploads/cvs/1700000000000_cv.pdf",
	}
}

func TestApplicationService_Submit_JobNotFound(t *testing.T) {
	ctx, svc, appRepo, jobRepo, _ := setupApplicationServiceTest(t)

	jobRepo.On("GetByID", ctx, 99).Return(nil, storage.ErrNotFound)

	_, err := svc.SubmitApplication(ctx, validSubmission(99))

	assert.ErrorIs(t, err, services.ErrNotFound)
	appRepo.AssertNotCalled(t, "Create")
}

// A closed job is rejected before any field validation runs, even when the
// payload itself is invalid.
func TestApplicationService_Submit_ClosedJobWinsOverFieldErrors(t *testing.T) {
	ctx, svc, appRepo, jobRepo, _ := setupApplicationServiceTest(t)

	jobRepo.On("GetByID", ctx, 5).Return(&models.Job{ID: 5, Status: models.JobStatusClosed}, nil)

	req := validSubmission(5)
	req.FullName = ""
	req.Email = "not-an-email"

	_, err := svc.SubmitApplication(ctx, req)

	assert.ErrorIs(t, err, services.ErrJobUnavailable)
	assert.NotErrorIs(t, err, services.ErrValidation)
	appRepo.AssertNotCalled(t, "Create")
}

func TestApplicationService_Submit_CollectsFieldErrors(t *testing.T) {
	ctx, svc, appRepo, jobRepo, _ := setupApplicationServiceTest(t)

	jobRepo.On("GetByID", ctx, 5).Return(&models.Job{ID: 5, Status: models.JobStatusAvailable}, nil)

	badSalary := "RANGE_1_2"
	badEducation := "KINDERGARTEN"
	badYear := 1900
	req := &dto.CreateApplicationRequest{
		JobID:                 5,
		Email:                 "jane@invalid",
		ExpectedSalary:        &badSalary,
		HighestEducationLevel: &badEducation,
		GraduationYear:        &badYear,
	}

	_, err := svc.SubmitApplication(ctx, req)

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Full name is required.", verr.Fields["fullName"])
	assert.Equal(t, "Invalid email format.", verr.Fields["email"])
	assert.Equal(t, "Current city is required.", verr.Fields["currentCity"])
	assert.Equal(t, "Nationality is required.", verr.Fields["nationality"])
	assert.Equal(t, "Date of birth is required.", verr.Fields["date_of_birth"])
	assert.Equal(t, "CV is required.", verr.Fields["cvUrl"])
	assert.Equal(t, "Invalid salary range.", verr.Fields["expectedSalary"])
	assert.Equal(t, "Invalid education level.", verr.Fields["highestEducationLevel"])
	assert.Equal(t, "Invalid graduation year.", verr.Fields["graduationYear"])
	appRepo.AssertNotCalled(t, "Create")
}

func TestApplicationService_Submit_EmptyEmailMessage(t *testing.T) {
	ctx, svc, _, jobRepo, _ := setupApplicationServiceTest(t)

	jobRepo.On("GetByID", ctx, 5).Return(&models.Job{ID: 5, Status: models.JobStatusAvailable}, nil)

	req := validSubmission(5)
	req.Email = "   "

	_, err := svc.SubmitApplication(ctx, req)

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email is required.", verr.Fields["email"])
}

func TestApplicationService_Submit_ExperienceAndLinkErrors(t *testing.T) {
	ctx, svc, appRepo, jobRepo, _ := setupApplicationServiceTest(t)

	jobRepo.On("GetByID", ctx, 5).Return(&models.Job{ID: 5, Status: models.JobStatusAvailable}, nil)

	negative := -2
	req := validSubmission(5)
	req.YearsOfExperience = &negative
	req.Links = []string{"a", "b", "c", "d"}

	_, err := svc.SubmitApplication(ctx, req)

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid years of experience.", verr.Fields["yearsOfExperience"])
	assert.Equal(t, "A maximum of 3 links is allowed.", verr.Fields["links"])
	appRepo.AssertNotCalled(t, "Create")
}

// The job lookup runs before any field rules, so a bad payload against a
// missing job is still a NotFound, not a validation error.
func TestApplicationService_Submit_MissingJobWinsOverFieldErrors(t *testing.T) {
	ctx, svc, appRepo, jobRepo, _ := setupApplicationServiceTest(t)

	jobRepo.On("GetByID", ctx, 99).Return(nil, storage.ErrNotFound)

	req := validSubmission(99)
	req.Links = []string{"a", "b", "c", "d"}

	_, err := svc.SubmitApplication(ctx, req)

	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.NotErrorIs(t, err, services.ErrValidation)
	appRepo.AssertNotCalled(t, "Create")
}

func TestApplicationService_Update_TooManyLinks(t *testing.T) {
	ctx, svc, appRepo, _, _ := setupApplicationServiceTest(t)

	links := []string{"a", "b", "c", "d"}
	_, err := svc.UpdateApplication(ctx, 7, &dto.UpdateApplicationRequest{Links: &links})

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "A maximum of 3 links is allowed.", verr.Fields["links"])
	appRepo.AssertNotCalled(t, "Update")
}

func TestApplicationService_Submit_Success(t *testing.T) {
	ctx, svc, appRepo, jobRepo, _ := setupApplicationServiceTest(t)

	req := validSubmission(5)
	jobRepo.On("GetByID", ctx, 5).Return(&models.Job{ID: 5, Status: models.JobStatusAvailable}, nil)
	created := &models.Application{ID: 11, JobID: 5, Status: models.ApplicationStatusPending}
	appRepo.On("Create", ctx, req).Return(created, nil)

	app, err := svc.SubmitApplication(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, created, app)
	appRepo.AssertExpectations(t)
}

func TestApplicationService_Update_ExplicitEmptyFullName(t *testing.T) {
	ctx, svc, appRepo, _, _ := setupApplicationServiceTest(t)

	empty := ""
	_, err := svc.UpdateApplication(ctx, 7, &dto.UpdateApplicationRequest{FullName: &empty})

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Full name cannot be empty.", verr.Fields["fullName"])
	appRepo.AssertNotCalled(t, "Update")
}

func TestApplicationService_Update_InvalidStatus(t *testing.T) {
	ctx, svc, appRepo, _, _ := setupApplicationServiceTest(t)

	bad := "SHORTLISTED"
	_, err := svc.UpdateApplication(ctx, 7, &dto.UpdateApplicationRequest{Status: &bad})

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid status.", verr.Fields["status"])
	appRepo.AssertNotCalled(t, "Update")
}

func TestApplicationService_Update_StatusTriage(t *testing.T) {
	ctx, svc, appRepo, _, _ := setupApplicationServiceTest(t)

	approved := "APPROVED"
	req := &dto.UpdateApplicationRequest{Status: &approved}
	updated := &models.Application{ID: 7, Status: models.ApplicationStatusApproved, AppliedAt: time.Now()}
	appRepo.On("Update", ctx, 7, req).Return(updated, nil)

	app, err := svc.UpdateApplication(ctx, 7, req)

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, app.Status)
}

func TestApplicationService_Delete_RemovesCvBestEffort(t *testing.T) {
	ctx, svc, appRepo, _, files := setupApplicationServiceTest(t)

	stored := &models.Application{ID: 7, CvURL: "/uploads/cvs/1700000000000_cv.pdf"}
	appRepo.On("GetByID", ctx, 7).Return(stored, nil)
	appRepo.On("Delete", ctx, 7).Return(nil)
	files.On("Delete", stored.CvURL).Return(assert.AnError)

	err := svc.DeleteApplication(ctx, 7)

	// File cleanup failure never fails the delete.
	require.NoError(t, err)
	files.AssertExpectations(t)
}

func TestApplicationService_Delete_NotFound(t *testing.T) {
	ctx, svc, appRepo, _, files := setupApplicationServiceTest(t)

	appRepo.On("GetByID", ctx, 42).Return(nil, storage.ErrNotFound)

	err := svc.DeleteApplication(ctx, 42)

	assert.ErrorIs(t, err, services.ErrNotFound)
	appRepo.AssertNotCalled(t, "Delete")
	files.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestApplicationService_List_SortsResults(t *testing.T) {
	ctx, svc, appRepo, _, _ := setupApplicationServiceTest(t)

	base := time.Now()
	req := &dto.ListApplicationsRequest{ExpectedSalary: dto.SalarySortLowest}
	low := models.Salary400600
	high := models.Salary15002000
	appRepo.On("List", ctx, req).Return([]*models.Application{
		{ID: 1, ExpectedSalary: &high, Status: models.ApplicationStatusPending, AppliedAt: base},
		{ID: 2, ExpectedSalary: &low, Status: models.ApplicationStatusPending, AppliedAt: base},
	}, nil)

	apps, err := svc.ListApplications(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, 2, apps[0].ID)
	assert.Equal(t, 1, apps[1].ID)
}
