// internal/storage/postgres/jobs.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/storage"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, position, location, description, status, type, requirements, responsibilities, created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	err := row.Scan(
		&job.ID,
		&job.Position,
		&job.Location,
		&job.Description,
		&job.Status,
		&job.Type,
		&job.Requirements,
		&job.Responsibilities,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List returns jobs matching the filter, AVAILABLE first, newest first.
// Pagination applies only when the request carries both page and limit.
func (r *JobRepo) List(ctx context.Context, req *dto.ListJobsRequest) ([]*models.Job, error) {
	conditions, args := buildJobConditions(req)

	var qb strings.Builder
	qb.WriteString("SELECT " + jobColumns + " FROM jobs")
	appendWhere(&qb, conditions)
	qb.WriteString(" ORDER BY (status = 'AVAILABLE') DESC, created_at DESC")

	if req.Paginated() {
		args = append(args, *req.Limit)
		qb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
		args = append(args, (*req.Page-1)*(*req.Limit))
		qb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	}

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]*models.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating job rows: %w", err)
	}
	return jobs, nil
}

// Count returns the number of jobs matching the filter, ignoring pagination.
func (r *JobRepo) Count(ctx context.Context, req *dto.ListJobsRequest) (int, error) {
	conditions, args := buildJobConditions(req)

	var qb strings.Builder
	qb.WriteString("SELECT count(*) FROM jobs")
	appendWhere(&qb, conditions)

	var count int
	if err := r.db.QueryRow(ctx, qb.String(), args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting jobs: %w", err)
	}
	return count, nil
}

// GetByID fetches a single job posting.
func (r *JobRepo) GetByID(ctx context.Context, id int) (*models.Job, error) {
	row := r.db.QueryRow(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id = $1", id)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("fetching job %d: %w", id, err)
	}
	return job, nil
}

// Create saves a new job posting, applying the documented defaults.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	status := models.JobStatusAvailable
	if req.Status != nil {
		status = *req.Status
	}
	jobType := models.JobTypeFullTime
	if req.Type != nil {
		jobType = *req.Type
	}
	responsibilities := req.Responsibilities
	if responsibilities == nil {
		responsibilities = []string{}
	}

	query := `
		INSERT INTO jobs (position, location, description, status, type, requirements, responsibilities)
		VALUES ($1, $2, $3, $4::job_status, $5::job_type, $6, $7)
		RETURNING ` + jobColumns

	row := r.db.QueryRow(ctx, query,
		req.Position,
		req.Location,
		req.Description,
		string(status),
		string(jobType),
		req.Requirements,
		responsibilities,
	)

	job, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}
	return job, nil
}

// Update applies the provided fields only; nil fields are left unchanged.
func (r *JobRepo) Update(ctx context.Context, id int, req *dto.UpdateJobRequest) (*models.Job, error) {
	var sets []string
	var args []any

	if req.Position != nil {
		args = append(args, *req.Position)
		sets = append(sets, fmt.Sprintf("position = $%d", len(args)))
	}
	if req.Location != nil {
		args = append(args, *req.Location)
		sets = append(sets, fmt.Sprintf("location = $%d", len(args)))
	}
	if req.Description != nil {
		args = append(args, *req.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if req.Status != nil {
		args = append(args, string(*req.Status))
		sets = append(sets, fmt.Sprintf("status = $%d::job_status", len(args)))
	}
	if req.Type != nil {
		args = append(args, string(*req.Type))
		sets = append(sets, fmt.Sprintf("type = $%d::job_type", len(args)))
	}
	if req.Requirements != nil {
		args = append(args, *req.Requirements)
		sets = append(sets, fmt.Sprintf("requirements = $%d", len(args)))
	}
	if req.Responsibilities != nil {
		args = append(args, *req.Responsibilities)
		sets = append(sets, fmt.Sprintf("responsibilities = $%d", len(args)))
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE jobs SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("updating job %d: %w", id, err)
	}
	return job, nil
}

// UpdateStatus sets the job status. Concurrent toggles race read-modify-write;
// last writer wins.
func (r *JobRepo) UpdateStatus(ctx context.Context, id int, status models.JobStatus) (*models.Job, error) {
	query := "UPDATE jobs SET status = $1::job_status, updated_at = NOW() WHERE id = $2 RETURNING " + jobColumns
	job, err := scanJob(r.db.QueryRow(ctx, query, string(status), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("updating job %d status: %w", id, err)
	}
	return job, nil
}

// Delete removes a job. Dependent applications go with it via the store-level
// cascade.
func (r *JobRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM jobs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting job %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
