// internal/storage/postgres/applications.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/storage"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = `id, job_id, full_name, email, phone_number, current_city, nationality, date_of_birth, availability_to_start, years_of_experience, last_job_title, last_company_name, highest_education_level, field_of_study, graduation_year, expected_salary, links, cv_url, status, applied_at, created_at, updated_at`

// Same columns qualified for the join with jobs.
const applicationColumnsQualified = `a.id, a.job_id, a.full_name, a.email, a.phone_number, a.current_city, a.nationality, a.date_of_birth, a.availability_to_start, a.years_of_experience, a.last_job_title, a.last_company_name, a.highest_education_level, a.field_of_study, a.graduation_year, a.expected_salary, a.links, a.cv_url, a.status, a.applied_at, a.created_at, a.updated_at`

// ApplicationRepo implements the storage.ApplicationRepository interface
// using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func applicationScanTargets(app *models.Application) []any {
	return []any{
		&app.ID,
		&app.JobID,
		&app.FullName,
		&app.Email,
		&app.PhoneNumber,
		&app.CurrentCity,
		&app.Nationality,
		&app.DateOfBirth,
		&app.AvailabilityToStart,
		&app.YearsOfExperience,
		&app.LastJobTitle,
		&app.LastCompanyName,
		&app.HighestEducationLevel,
		&app.FieldOfStudy,
		&app.GraduationYear,
		&app.ExpectedSalary,
		&app.Links,
		&app.CvURL,
		&app.Status,
		&app.AppliedAt,
		&app.CreatedAt,
		&app.UpdatedAt,
	}
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	var app models.Application
	if err := row.Scan(applicationScanTargets(&app)...); err != nil {
		return nil, err
	}
	return &app, nil
}

// List returns applications matching the filter, each carrying its parent
// job's position. Ordering is the caller's concern.
func (r *ApplicationRepo) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]*models.Application, error) {
	conditions, args := buildApplicationConditions(req, time.Now())

	var qb strings.Builder
	qb.WriteString("SELECT " + applicationColumnsQualified + ", j.position FROM applications a JOIN jobs j ON j.id = a.job_id")
	appendWhere(&qb, conditions)

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	defer rows.Close()

	applications := make([]*models.Application, 0)
	for rows.Next() {
		var app models.Application
		var position string
		targets := append(applicationScanTargets(&app), &position)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scanning application row: %w", err)
		}
		app.Job = &models.JobSummary{Position: position}
		applications = append(applications, &app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating application rows: %w", err)
	}
	return applications, nil
}

// GetByID fetches one application with the full parent job attached.
func (r *ApplicationRepo) GetByID(ctx context.Context, id int) (*models.Application, error) {
	row := r.db.QueryRow(ctx, "SELECT "+applicationColumns+" FROM applications WHERE id = $1", id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("fetching application %d: %w", id, err)
	}

	jobRow := r.db.QueryRow(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id = $1", app.JobID)
	job, err := scanJob(jobRow)
	if err != nil {
		// The FK guarantees the parent exists; treat a miss as an
		// internal inconsistency rather than a NotFound.
		return nil, fmt.Errorf("fetching job %d for application %d: %w", app.JobID, id, err)
	}
	app.Job = job.Summary()
	return app, nil
}

// Create inserts a new application with status PENDING.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	links := req.Links
	if links == nil {
		links = []string{}
	}

	query := `
		INSERT INTO applications (
			job_id, full_name, email, phone_number, current_city, nationality,
			date_of_birth, availability_to_start, years_of_experience,
			last_job_title, last_company_name, highest_education_level,
			field_of_study, graduation_year, expected_salary, links, cv_url, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12::education_level, $13, $14, $15::expected_salary, $16, $17, 'PENDING')
		RETURNING ` + applicationColumns

	row := r.db.QueryRow(ctx, query,
		req.JobID,
		req.FullName,
		req.Email,
		req.PhoneNumber,
		req.CurrentCity,
		req.Nationality,
		req.DateOfBirth,
		req.AvailabilityToStart,
		req.YearsOfExperience,
		req.LastJobTitle,
		req.LastCompanyName,
		req.HighestEducationLevel,
		req.FieldOfStudy,
		req.GraduationYear,
		req.ExpectedSalary,
		links,
		req.CvURL,
	)

	app, err := scanApplication(row)
	if err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}
	return app, nil
}

// Update applies the provided fields only; nil fields are left unchanged.
func (r *ApplicationRepo) Update(ctx context.Context, id int, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	var sets []string
	var args []any

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Status != nil {
		args = append(args, *req.Status)
		sets = append(sets, fmt.Sprintf("status = $%d::application_status", len(args)))
	}
	if req.FullName != nil {
		set("full_name", *req.FullName)
	}
	if req.Email != nil {
		set("email", *req.Email)
	}
	if req.PhoneNumber != nil {
		set("phone_number", *req.PhoneNumber)
	}
	if req.CurrentCity != nil {
		set("current_city", *req.CurrentCity)
	}
	if req.Nationality != nil {
		set("nationality", *req.Nationality)
	}
	if req.DateOfBirth != nil {
		set("date_of_birth", *req.DateOfBirth)
	}
	if req.AvailabilityToStart != nil {
		set("availability_to_start", *req.AvailabilityToStart)
	}
	if req.YearsOfExperience != nil {
		set("years_of_experience", *req.YearsOfExperience)
	}
	if req.LastJobTitle != nil {
		set("last_job_title", *req.LastJobTitle)
	}
	if req.LastCompanyName != nil {
		set("last_company_name", *req.LastCompanyName)
	}
	if req.HighestEducationLevel != nil {
		args = append(args, *req.HighestEducationLevel)
		sets = append(sets, fmt.Sprintf("highest_education_level = $%d::education_level", len(args)))
	}
	if req.FieldOfStudy != nil {
		set("field_of_study", *req.FieldOfStudy)
	}
	if req.GraduationYear != nil {
		set("graduation_year", *req.GraduationYear)
	}
	if req.ExpectedSalary != nil {
		args = append(args, *req.ExpectedSalary)
		sets = append(sets, fmt.Sprintf("expected_salary = $%d::expected_salary", len(args)))
	}
	if req.Links != nil {
		set("links", *req.Links)
	}
	if req.CvURL != nil {
		set("cv_url", *req.CvURL)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE applications SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), applicationColumns)

	app, err := scanApplication(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("updating application %d: %w", id, err)
	}
	return app, nil
}

// Delete removes an application row.
func (r *ApplicationRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM applications WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting application %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// CountByJobIDs returns how many applications each listed job has. Jobs with
// no applications are simply absent from the map.
func (r *ApplicationRepo) CountByJobIDs(ctx context.Context, jobIDs []int) (map[int]int, error) {
	counts := make(map[int]int, len(jobIDs))
	if len(jobIDs) == 0 {
		return counts, nil
	}

	rows, err := r.db.Query(ctx,
		"SELECT job_id, count(*) FROM applications WHERE job_id = ANY($1) GROUP BY job_id", jobIDs)
	if err != nil {
		return nil, fmt.Errorf("counting applications by job: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var jobID, count int
		if err := rows.Scan(&jobID, &count); err != nil {
			return nil, fmt.Errorf("scanning application count row: %w", err)
		}
		counts[jobID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating application count rows: %w", err)
	}
	return counts, nil
}

// ListByJobIDs returns the full application rows grouped by job id, newest
// first within each job.
func (r *ApplicationRepo) ListByJobIDs(ctx context.Context, jobIDs []int) (map[int][]*models.Application, error) {
	grouped := make(map[int][]*models.Application, len(jobIDs))
	if len(jobIDs) == 0 {
		return grouped, nil
	}

	rows, err := r.db.Query(ctx,
		"SELECT "+applicationColumns+" FROM applications WHERE job_id = ANY($1) ORDER BY applied_at DESC", jobIDs)
	if err != nil {
		return nil, fmt.Errorf("listing applications by job: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var app models.Application
		if err := rows.Scan(applicationScanTargets(&app)...); err != nil {
			return nil, fmt.Errorf("scanning application row: %w", err)
		}
		grouped[app.JobID] = append(grouped[app.JobID], &app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating application rows: %w", err)
	}
	return grouped, nil
}
