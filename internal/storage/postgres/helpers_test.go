package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestBuildApplicationConditions_Empty(t *testing.T) {
	conditions, args := buildApplicationConditions(&dto.ListApplicationsRequest{}, time.Now())
	assert.Empty(t, conditions)
	assert.Empty(t, args)
}

func TestBuildApplicationConditions_Search(t *testing.T) {
	req := &dto.ListApplicationsRequest{Search: "jane"}
	conditions, args := buildApplicationConditions(req, time.Now())

	require.Len(t, conditions, 1)
	assert.Equal(t, "(a.email ILIKE $1 OR a.full_name ILIKE $1)", conditions[0])
	assert.Equal(t, []any{"%jane%"}, args)
}

func TestBuildApplicationConditions_StatusAndJob(t *testing.T) {
	status := models.ApplicationStatusPending
	req := &dto.ListApplicationsRequest{Status: &status, JobID: intPtr(7)}
	conditions, args := buildApplicationConditions(req, time.Now())

	require.Len(t, conditions, 2)
	assert.Equal(t, "a.status = $1::application_status", conditions[0])
	assert.Equal(t, "a.job_id = $2", conditions[1])
	assert.Equal(t, []any{"PENDING", 7}, args)
}

func TestBuildApplicationConditions_AvailabilityImmediate(t *testing.T) {
	req := &dto.ListApplicationsRequest{Availability: dto.AvailabilityImmediate}
	conditions, args := buildApplicationConditions(req, time.Now())

	require.Len(t, conditions, 1)
	assert.Equal(t, "(a.availability_to_start = $1 OR a.availability_to_start IS NULL)", conditions[0])
	assert.Equal(t, []any{"IMMEDIATELY"}, args)
}

func TestBuildApplicationConditions_AvailabilitySoonest(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	req := &dto.ListApplicationsRequest{Availability: dto.AvailabilitySoonest}
	conditions, args := buildApplicationConditions(req, now)

	require.Len(t, conditions, 1)
	assert.Equal(t,
		"(a.availability_to_start = $1 OR a.availability_to_start IS NULL OR a.availability_to_start <= $2)",
		conditions[0])
	require.Len(t, args, 2)
	assert.Equal(t, "IMMEDIATELY", args[0])
	assert.Equal(t, "2025-03-31T12:00:00Z", args[1])
}

func TestBuildApplicationConditions_AvailabilityLater(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	req := &dto.ListApplicationsRequest{Availability: dto.AvailabilityLater}
	conditions, args := buildApplicationConditions(req, now)

	require.Len(t, conditions, 1)
	assert.Equal(t, "a.availability_to_start >= $1", conditions[0])
	assert.Equal(t, []any{"2025-03-31T12:00:00Z"}, args)
}

// The boundary timestamp satisfies both soonest and later windows.
func TestBuildApplicationConditions_BoundaryOverlap(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	horizon := availabilityHorizon(now)

	_, soonestArgs := buildApplicationConditions(&dto.ListApplicationsRequest{Availability: dto.AvailabilitySoonest}, now)
	_, laterArgs := buildApplicationConditions(&dto.ListApplicationsRequest{Availability: dto.AvailabilityLater}, now)

	assert.Equal(t, horizon, soonestArgs[1])
	assert.Equal(t, horizon, laterArgs[0])
}

func TestBuildApplicationConditions_UnknownAvailability(t *testing.T) {
	req := &dto.ListApplicationsRequest{Availability: "whenever"}
	conditions, args := buildApplicationConditions(req, time.Now())
	assert.Empty(t, conditions)
	assert.Empty(t, args)
}

func TestBuildJobConditions(t *testing.T) {
	status := models.JobStatusAvailable
	jobType := models.JobTypeContract
	req := &dto.ListJobsRequest{Search: "engineer", Status: &status, Type: &jobType}

	conditions, args := buildJobConditions(req)

	require.Len(t, conditions, 3)
	assert.Equal(t, "position ILIKE $1", conditions[0])
	assert.Equal(t, "status = $2::job_status", conditions[1])
	assert.Equal(t, "type = $3::job_type", conditions[2])
	assert.Equal(t, []any{"%engineer%", "AVAILABLE", "CONTRACT"}, args)
}

func TestAppendWhere(t *testing.T) {
	var qb strings.Builder
	qb.WriteString("SELECT 1 FROM t")
	appendWhere(&qb, nil)
	assert.Equal(t, "SELECT 1 FROM t", qb.String())

	appendWhere(&qb, []string{"a = $1", "b = $2"})
	assert.Equal(t, "SELECT 1 FROM t WHERE a = $1 AND b = $2", qb.String())
}
