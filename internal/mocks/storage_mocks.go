// internal/mocks/storage_mocks.go
// Hand-written testify mocks for the storage interfaces.
package mocks

import (
	"context"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"

	"github.com/stretchr/testify/mock"
)

type JobRepository struct {
	mock.Mock
}

func (m *JobRepository) List(ctx context.Context, req *dto.ListJobsRequest) ([]*models.Job, error) {
	args := m.Called(ctx, req)
	if jobs, ok := args.Get(0).([]*models.Job); ok {
		return jobs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *JobRepository) Count(ctx context.Context, req *dto.ListJobsRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func (m *JobRepository) GetByID(ctx context.Context, id int) (*models.Job, error) {
	args := m.Called(ctx, id)
	if job, ok := args.Get(0).(*models.Job); ok {
		return job, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *JobRepository) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if job, ok := args.Get(0).(*models.Job); ok {
		return job, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *JobRepository) Update(ctx context.Context, id int, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, id, req)
	if job, ok := args.Get(0).(*models.Job); ok {
		return job, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *JobRepository) UpdateStatus(ctx context.Context, id int, status models.JobStatus) (*models.Job, error) {
	args := m.Called(ctx, id, status)
	if job, ok := args.Get(0).(*models.Job); ok {
		return job, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *JobRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ApplicationRepository struct {
	mock.Mock
}

func (m *ApplicationRepository) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]*models.Application, error) {
	args := m.Called(ctx, req)
	if apps, ok := args.Get(0).([]*models.Application); ok {
		return apps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ApplicationRepository) GetByID(ctx context.Context, id int) (*models.Application, error) {
	args := m.Called(ctx, id)
	if app, ok := args.Get(0).(*models.Application); ok {
		return app, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ApplicationRepository) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if app, ok := args.Get(0).(*models.Application); ok {
		return app, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ApplicationRepository) Update(ctx context.Context, id int, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, id, req)
	if app, ok := args.Get(0).(*models.Application); ok {
		return app, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ApplicationRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ApplicationRepository) CountByJobIDs(ctx context.Context, jobIDs []int) (map[int]int, error) {
	args := m.Called(ctx, jobIDs)
	if counts, ok := args.Get(0).(map[int]int); ok {
		return counts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ApplicationRepository) ListByJobIDs(ctx context.Context, jobIDs []int) (map[int][]*models.Application, error) {
	args := m.Called(ctx, jobIDs)
	if grouped, ok := args.Get(0).(map[int][]*models.Application); ok {
		return grouped, args.Error(1)
	}
	return nil, args.Error(1)
}

type AdminRepository struct {
	mock.Mock
}

func (m *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	args := m.Called(ctx, email)
	if admin, ok := args.Get(0).(*models.Admin); ok {
		return admin, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AdminRepository) Create(ctx context.Context, email, passwordHash string) (*models.Admin, error) {
	args := m.Called(ctx, email, passwordHash)
	if admin, ok := args.Get(0).(*models.Admin); ok {
		return admin, args.Error(1)
	}
	return nil, args.Error(1)
}

type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) Collect(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	if stats, ok := args.Get(0).(*models.Stats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

type FileStore struct {
	mock.Mock
}

func (m *FileStore) Save(name string, data []byte) (string, string, error) {
	args := m.Called(name, data)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *FileStore) Delete(fileName string) error {
	args := m.Called(fileName)
	return args.Error(0)
}

func (m *FileStore) Open(relPath string) ([]byte, string, error) {
	args := m.Called(relPath)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}
