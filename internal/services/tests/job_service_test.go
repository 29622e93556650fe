package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/codescope-coders/codescope-rework/internal/mocks"
	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/services"
	"github.com/codescope-coders/codescope-rework/internal/storage"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupJobServiceTest(t *testing.T) (context.Context, services.JobService, *mocks.JobRepository, *mocks.ApplicationRepository) {
	t.Helper()
	jobRepo := &mocks.JobRepository{}
	appRepo := &mocks.ApplicationRepository{}
	svc := services.NewJobService(jobRepo, appRepo, zap.NewNop())
	return context.Background(), svc, jobRepo, appRepo
}

func intPtr(v int) *int            { return &v }
func strPtr(v string) *string      { return &v }
func strsPtr(v []string) *[]string { return &v }

func TestJobService_CreateJob_Validation(t *testing.T) {
	ctx, svc, jobRepo, _ := setupJobServiceTest(t)

	_, err := svc.CreateJob(ctx, &dto.CreateJobRequest{Position: "  ", Requirements: nil})

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, errors.Is(err, services.ErrValidation))
	assert.Equal(t, "Position is required.", verr.Fields["position"])
	assert.Equal(t, "At least one requirement is required.", verr.Fields["requirements"])
	jobRepo.AssertNotCalled(t, "Create")
}

func TestJobService_CreateJob_Success(t *testing.T) {
	ctx, svc, jobRepo, _ := setupJobServiceTest(t)

	req := &dto.CreateJobRequest{Position: "Backend Engineer", Requirements: []string{"Go"}}
	created := &models.Job{ID: 1, Position: "Backend Engineer", Status: models.JobStatusAvailable}
	jobRepo.On("Create", ctx, req).Return(created, nil)

	job, err := svc.CreateJob(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, created, job)
	jobRepo.AssertExpectations(t)
}

func TestJobService_ListJobs_Unpaginated(t *testing.T) {
	ctx, svc, jobRepo, _ := setupJobServiceTest(t)

	req := &dto.ListJobsRequest{}
	jobRepo.On("List", ctx, req).Return([]*models.Job{{ID: 1}, {ID: 2}}, nil)

	jobs, pagination, err := svc.ListJobs(ctx, req)

	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Nil(t, pagination)
	jobRepo.AssertNotCalled(t, "Count")
}

func TestJobService_ListJobs_PageBeyondEnd(t *testing.T) {
	ctx, svc, jobRepo, _ := setupJobServiceTest(t)

	req := &dto.ListJobsRequest{Page: intPtr(2), Limit: intPtr(15)}
	jobRepo.On("List", ctx, req).Return([]*models.Job{}, nil)
	jobRepo.On("Count", ctx, req).Return(10, nil)

	jobs, pagination, err := svc.ListJobs(ctx, req)

	require.NoError(t, err)
	assert.Empty(t, jobs)
	require.NotNil(t, pagination)
	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 15, pagination.Limit)
	assert.Equal(t, 10, pagination.Total)
	assert.Equal(t, 1, pagination.TotalPages)
}

func TestJobService_ListJobs_TotalPagesRoundsUp(t *testing.T) {
	ctx, svc, jobRepo, _ := setupJobServiceTest(t)

	req := &dto.ListJobsRequest{Page: intPtr(1), Limit: intPtr(3)}
	jobRepo.On("List", ctx, req).Return([]*models.Job{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
	jobRepo.On("Count", ctx, req).Return(7, nil)

	_, pagination, err := svc.ListJobs(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, pagination)
	assert.Equal(t, 3, pagination.TotalPages)
}

func TestJobService_ListJobs_TotalApplicationsField(t *testing.T) {
	ctx, svc, jobRepo, appRepo := setupJobServiceTest(t)

	req := &dto.ListJobsRequest{Fields: "total_applications"}
	jobRepo.On("List", ctx, req).Return([]*models.Job{{ID: 1}, {ID: 2}}, nil)
	appRepo.On("CountByJobIDs", ctx, []int{1, 2}).Return(map[int]int{1: 4}, nil)

	jobs, _, err := svc.ListJobs(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, jobs[0].TotalApplications)
	assert.Equal(t, 4, *jobs[0].TotalApplications)
	require.NotNil(t, jobs[1].TotalApplications)
	assert.Equal(t, 0, *jobs[1].TotalApplications)
}

func TestJobService_ListJobs_ApplicationsFieldWins(t *testing.T) {
	ctx, svc, jobRepo, appRepo := setupJobServiceTest(t)

	req := &dto.ListJobsRequest{Fields: "applications,total_applications"}
	jobRepo.On("List", ctx, req).Return([]*models.Job{{ID: 1}}, nil)
	appRepo.On("ListByJobIDs", ctx, []int{1}).
		Return(map[int][]*models.Application{1: {{ID: 9, JobID: 1}}}, nil)

	jobs, _, err := svc.ListJobs(ctx, req)

	require.NoError(t, err)
	require.Len(t, jobs[0].Applications, 1)
	assert.Nil(t, jobs[0].TotalApplications)
	appRepo.AssertNotCalled(t, "CountByJobIDs")
}

func TestJobService_ToggleJobStatus_RoundTrips(t *testing.T) {
	ctx, svc, jobRepo, _ := setupJobServiceTest(t)

	open := &models.Job{ID: 3, Status: models.JobStatusAvailable}
	closed := &models.Job{ID: 3, Status: models.JobStatusClosed}

	jobRepo.On("GetByID", ctx, 3).Return(open, nil).Once()
	jobRepo.On("UpdateStatus", ctx, 3, models.JobStatusClosed).Return(closed, nil).Once()

	job, err := svc.ToggleJobStatus(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, job.Status)

	jobRepo.On("GetByID", ctx, 3).Return(closed, nil).Once()
	jobRepo.On("UpdateStatus", ctx, 3, models.JobStatusAvailable).Return(open, nil).Once()

	job, err = svc.ToggleJobStatus(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusAvailable, job.Status)
	jobRepo.AssertExpectations(t)
}

func TestJobService_UpdateJob_RejectsExplicitEmpty(t *testing.T) {
	ctx, svc, jobRepo, _ := setupJobServiceTest(t)

	_, err := svc.UpdateJob(ctx, 1, &dto.UpdateJobRequest{
		Position:     strPtr(""),
		Requirements: strsPtr([]string{}),
	})

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "position")
	assert.Contains(t, verr.Fields, "requirements")
	jobRepo.AssertNotCalled(t, "Update")
}

func TestJobService_DeleteJob_NotFound(t *testing.T) {
	ctx, svc, jobRepo, _ := setupJobServiceTest(t)

	jobRepo.On("Delete", ctx, 42).Return(storage.ErrNotFound)

	err := svc.DeleteJob(ctx, 42)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
