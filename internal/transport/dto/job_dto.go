// internal/transport/dto/job_dto.go
package dto

import (
	"strings"

	"github.com/codescope-coders/codescope-rework/internal/models"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
type CreateJobRequest struct {
	Position         string            `json:"position"`
	Location         *string           `json:"location,omitempty"`
	Description      *string           `json:"description,omitempty"`
	Status           *models.JobStatus `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE CLOSED"`
	Type             *models.JobType   `json:"type,omitempty" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT FREELANCE INTERNSHIP TEMPORARY"`
	Requirements     []string          `json:"requirements"`
	Responsibilities []string          `json:"responsibilities,omitempty"`
}

// UpdateJobRequest defines the structure for a partial job update. Nil means
// "leave unchanged"; a provided empty position or requirements list is a
// validation error.
type UpdateJobRequest struct {
	Position         *string           `json:"position,omitempty"`
	Location         *string           `json:"location,omitempty"`
	Description      *string           `json:"description,omitempty"`
	Status           *models.JobStatus `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE CLOSED"`
	Type             *models.JobType   `json:"type,omitempty" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT FREELANCE INTERNSHIP TEMPORARY"`
	Requirements     *[]string         `json:"requirements,omitempty"`
	Responsibilities *[]string         `json:"responsibilities,omitempty"`
}

// HasFields reports whether at least one field was provided.
func (r *UpdateJobRequest) HasFields() bool {
	return r.Position != nil || r.Location != nil || r.Description != nil ||
		r.Status != nil || r.Type != nil || r.Requirements != nil || r.Responsibilities != nil
}

// ListJobsRequest defines query parameters for listing jobs.
type ListJobsRequest struct {
	Search string            `form:"search"`
	Status *models.JobStatus `form:"status" validate:"omitempty,oneof=AVAILABLE CLOSED"`
	Type   *models.JobType   `form:"type" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT FREELANCE INTERNSHIP TEMPORARY"`
	Fields string            `form:"fields"`
	Page   *int              `form:"page" validate:"omitempty,gte=1"`
	Limit  *int              `form:"limit" validate:"omitempty,gte=1"`
}

// Paginated reports whether pagination applies. Both page and limit have to
// be supplied; otherwise all matching rows come back unpaginated.
func (r *ListJobsRequest) Paginated() bool {
	return r.Page != nil && r.Limit != nil
}

// IncludeApplications reports whether the embedded applications list was
// requested via fields.
func (r *ListJobsRequest) IncludeApplications() bool {
	return r.hasField("applications")
}

// IncludeTotalApplications reports whether the computed count was requested
// via fields.
func (r *ListJobsRequest) IncludeTotalApplications() bool {
	return r.hasField("total_applications")
}

func (r *ListJobsRequest) hasField(name string) bool {
	for _, f := range strings.Split(r.Fields, ",") {
		if strings.TrimSpace(f) == name {
			return true
		}
	}
	return false
}

// Pagination describes the page window of a paginated job list response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
