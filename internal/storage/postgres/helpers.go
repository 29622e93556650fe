// internal/storage/postgres/helpers.go
package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"
)

// buildApplicationConditions translates the optional list filters into a
// conjunction of SQL conditions with positional args. Absent options
// contribute no constraint.
//
// Availability windows compare the stored ISO-8601 strings lexically, the
// way the admin dashboard always has. A row at exactly now+30d matches both
// "soonest" and "later"; the overlap is documented behavior.
func buildApplicationConditions(req *dto.ListApplicationsRequest, now time.Time) ([]string, []any) {
	var conditions []string
	var args []any

	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(a.email ILIKE $%d OR a.full_name ILIKE $%d)", n, n))
	}
	if req.Status != nil {
		args = append(args, string(*req.Status))
		conditions = append(conditions,
			fmt.Sprintf("a.status = $%d::application_status", len(args)))
	}
	if req.JobID != nil {
		args = append(args, *req.JobID)
		conditions = append(conditions, fmt.Sprintf("a.job_id = $%d", len(args)))
	}

	switch req.Availability {
	case dto.AvailabilityImmediate:
		args = append(args, models.AvailabilityImmediately)
		conditions = append(conditions,
			fmt.Sprintf("(a.availability_to_start = $%d OR a.availability_to_start IS NULL)", len(args)))
	case dto.AvailabilitySoonest:
		args = append(args, models.AvailabilityImmediately)
		sentinel := len(args)
		args = append(args, availabilityHorizon(now))
		conditions = append(conditions,
			fmt.Sprintf("(a.availability_to_start = $%d OR a.availability_to_start IS NULL OR a.availability_to_start <= $%d)",
				sentinel, len(args)))
	case dto.AvailabilityLater:
		args = append(args, availabilityHorizon(now))
		conditions = append(conditions,
			fmt.Sprintf("a.availability_to_start >= $%d", len(args)))
	}

	return conditions, args
}

// availabilityHorizon is the 30-day cutoff between "soonest" and "later".
func availabilityHorizon(now time.Time) string {
	return now.AddDate(0, 0, 30).UTC().Format(time.RFC3339)
}

// buildJobConditions translates the optional job list filters into SQL
// conditions with positional args.
func buildJobConditions(req *dto.ListJobsRequest) ([]string, []any) {
	var conditions []string
	var args []any

	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		conditions = append(conditions, fmt.Sprintf("position ILIKE $%d", len(args)))
	}
	if req.Status != nil {
		args = append(args, string(*req.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d::job_status", len(args)))
	}
	if req.Type != nil {
		args = append(args, string(*req.Type))
		conditions = append(conditions, fmt.Sprintf("type = $%d::job_type", len(args)))
	}

	return conditions, args
}

// appendWhere writes the WHERE clause for the collected conditions, if any.
func appendWhere(qb *strings.Builder, conditions []string) {
	if len(conditions) > 0 {
		qb.WriteString(" WHERE ")
		qb.WriteString(strings.Join(conditions, " AND "))
	}
}
