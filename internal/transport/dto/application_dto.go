// internal/transport/dto/application_dto.go
package dto

import (
	"github.com/codescope-coders/codescope-rework/internal/models"
)

// Salary sort modes accepted by the applications list endpoint. These are
// modes, not salary band literals.
const (
	SalarySortLowest  = "lowest"
	SalarySortHighest = "highest"
)

// Availability filter modes accepted by the applications list endpoint.
// Anything else imposes no constraint.
const (
	AvailabilityImmediate = "immediate"
	AvailabilitySoonest   = "soonest"
	AvailabilityLater     = "later"
)

// ListApplicationsRequest defines query parameters for listing applications.
type ListApplicationsRequest struct {
	Search         string                    `form:"search"`
	Status         *models.ApplicationStatus `form:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED INTERVIEWED"`
	JobID          *int                      `form:"jobId" validate:"omitempty,gte=1"`
	ExpectedSalary string                    `form:"expectedSalary" validate:"omitempty,oneof=lowest highest"`
	Availability   string                    `form:"availability"`
}

// CreateApplicationRequest defines the public submission payload. Presence
// and format of the required fields are checked by the service so that all
// field errors are collected and returned together.
type CreateApplicationRequest struct {
	JobID                 int      `json:"jobId"`
	FullName              string   `json:"fullName"`
	Email                 string   `json:"email"`
	PhoneNumber           *string  `json:"phoneNumber,omitempty"`
	CurrentCity           string   `json:"currentCity"`
	Nationality           string   `json:"nationality"`
	DateOfBirth           string   `json:"date_of_birth"`
	AvailabilityToStart   *string  `json:"availabilityToStart,omitempty"`
	YearsOfExperience     *int     `json:"yearsOfExperience,omitempty"`
	LastJobTitle          *string  `json:"lastJobTitle,omitempty"`
	LastCompanyName       *string  `json:"lastCompanyName,omitempty"`
	HighestEducationLevel *string  `json:"highestEducationLevel,omitempty"`
	FieldOfStudy          *string  `json:"fieldOfStudy,omitempty"`
	GraduationYear        *int     `json:"graduationYear,omitempty"`
	ExpectedSalary        *string  `json:"expectedSalary,omitempty"`
	Links                 []string `json:"links,omitempty"`
	CvURL                 string   `json:"cvUrl"`
}

// UpdateApplicationRequest defines a partial application update. Nil means
// "leave unchanged"; a provided empty required field is rejected with a
// "cannot be empty" error.
type UpdateApplicationRequest struct {
	Status                *string   `json:"status,omitempty"`
	FullName              *string   `json:"fullName,omitempty"`
	Email                 *string   `json:"email,omitempty"`
	PhoneNumber           *string   `json:"phoneNumber,omitempty"`
	CurrentCity           *string   `json:"currentCity,omitempty"`
	Nationality           *string   `json:"nationality,omitempty"`
	DateOfBirth           *string   `json:"date_of_birth,omitempty"`
	AvailabilityToStart   *string   `json:"availabilityToStart,omitempty"`
	YearsOfExperience     *int      `json:"yearsOfExperience,omitempty"`
	LastJobTitle          *string   `json:"lastJobTitle,omitempty"`
	LastCompanyName       *string   `json:"lastCompanyName,omitempty"`
	HighestEducationLevel *string   `json:"highestEducationLevel,omitempty"`
	FieldOfStudy          *string   `json:"fieldOfStudy,omitempty"`
	GraduationYear        *int      `json:"graduationYear,omitempty"`
	ExpectedSalary        *string   `json:"expectedSalary,omitempty"`
	Links                 *[]string `json:"links,omitempty"`
	CvURL                 *string   `json:"cvUrl,omitempty"`
}

// HasFields reports whether at least one field was provided.
func (r *UpdateApplicationRequest) HasFields() bool {
	return r.Status != nil || r.FullName != nil || r.Email != nil ||
		r.PhoneNumber != nil || r.CurrentCity != nil || r.Nationality != nil ||
		r.DateOfBirth != nil || r.AvailabilityToStart != nil ||
		r.YearsOfExperience != nil || r.LastJobTitle != nil ||
		r.LastCompanyName != nil || r.HighestEducationLevel != nil ||
		r.FieldOfStudy != nil || r.GraduationYear != nil ||
		r.ExpectedSalary != nil || r.Links != nil || r.CvURL != nil
}
