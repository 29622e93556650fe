// internal/storage/postgres/stats.go
package postgres

import (
	"context"
	"fmt"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepo implements the storage.StatsRepository interface using PostgreSQL.
type StatsRepo struct {
	db Querier
}

// NewStatsRepo creates a new StatsRepo.
func NewStatsRepo(db *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{db: db}
}

// Compile-time check to ensure StatsRepo implements StatsRepository
var _ storage.StatsRepository = (*StatsRepo)(nil)

func (r *StatsRepo) Collect(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats

	err := r.db.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE status = 'PENDING'),
			count(*) FILTER (WHERE status = 'APPROVED'),
			count(*) FILTER (WHERE status = 'INTERVIEWED'),
			count(*) FILTER (WHERE status = 'REJECTED')
		FROM applications`).Scan(
		&stats.TotalApplications,
		&stats.PendingApplications,
		&stats.ApprovedApplications,
		&stats.InterviewedApplications,
		&stats.RejectedApplications,
	)
	if err != nil {
		return nil, fmt.Errorf("collecting application stats: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE status = 'AVAILABLE'),
			count(*) FILTER (WHERE status = 'CLOSED')
		FROM jobs`).Scan(
		&stats.TotalJobs,
		&stats.ActiveJobs,
		&stats.ClosedJobs,
	)
	if err != nil {
		return nil, fmt.Errorf("collecting job stats: %w", err)
	}

	return &stats, nil
}
