package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusAvailable JobStatus = "AVAILABLE"
	JobStatusClosed    JobStatus = "CLOSED"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusAvailable, JobStatusClosed:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// IsValid reports whether the value is a member of the enum.
func (js JobStatus) IsValid() bool {
	return js == JobStatusAvailable || js == JobStatusClosed
}

// --- Job Type Enum ---
type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeFreelance  JobType = "FREELANCE"
	JobTypeInternship JobType = "INTERNSHIP"
	JobTypeTemporary  JobType = "TEMPORARY"
)

// Scan implements the sql.Scanner interface for JobType
func (jt *JobType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobType: value is not string or []byte")
		}
	}
	v := JobType(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid JobType value: %s", strVal)
	}
	*jt = v
	return nil
}

// Value implements the driver.Valuer interface for JobType
func (jt JobType) Value() (driver.Value, error) {
	return string(jt), nil
}

func (jt JobType) IsValid() bool {
	switch jt {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeFreelance, JobTypeInternship, JobTypeTemporary:
		return true
	default:
		return false
	}
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "PENDING"
	ApplicationStatusApproved    ApplicationStatus = "APPROVED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
	ApplicationStatusInterviewed ApplicationStatus = "INTERVIEWED"
)

// ApplicationStatuses lists the statuses in declaration order. Triage
// sorting relies on this order (PENDING first).
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusApproved,
	ApplicationStatusRejected,
	ApplicationStatusInterviewed,
}

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
	*as = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

func (as ApplicationStatus) IsValid() bool {
	switch as {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected, ApplicationStatusInterviewed:
		return true
	default:
		return false
	}
}

// --- Expected Salary Enum ---
type ExpectedSalary string

const (
	Salary400600   ExpectedSalary = "RANGE_400_600"
	Salary700900   ExpectedSalary = "RANGE_700_900"
	Salary10001500 ExpectedSalary = "RANGE_1000_1500"
	Salary15002000 ExpectedSalary = "RANGE_1500_2000"
	SalaryOther    ExpectedSalary = "OTHER"
)

// Scan implements the sql.Scanner interface for ExpectedSalary
func (es *ExpectedSalary) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ExpectedSalary: value is not string or []byte")
		}
	}
	v := ExpectedSalary(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid ExpectedSalary value: %s", strVal)
	}
	*es = v
	return nil
}

// Value implements the driver.Valuer interface for ExpectedSalary
func (es ExpectedSalary) Value() (driver.Value, error) {
	return string(es), nil
}

func (es ExpectedSalary) IsValid() bool {
	switch es {
	case Salary400600, Salary700900, Salary10001500, Salary15002000, SalaryOther:
		return true
	default:
		return false
	}
}

// --- Education Level Enum ---
type EducationLevel string

const (
	EducationNone             EducationLevel = "NO_FORMAL_EDUCATION"
	EducationPrimary          EducationLevel = "PRIMARY"
	EducationIntermediate     EducationLevel = "INTERMEDIATE"
	EducationSecondary        EducationLevel = "SECONDARY"
	EducationDiploma          EducationLevel = "DIPLOMA"
	EducationBachelors        EducationLevel = "BACHELORS"
	EducationMasters          EducationLevel = "MASTERS"
	EducationDoctorate        EducationLevel = "DOCTORATE"
	EducationPostdoctorate    EducationLevel = "POSTDOCTORATE"
	EducationCertificate      EducationLevel = "CERTIFICATE"
	EducationProfessionalCert EducationLevel = "PROFESSIONAL_CERTIFICATION"
)

// Scan implements the sql.Scanner interface for EducationLevel
func (el *EducationLevel) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan EducationLevel: value is not string or []byte")
		}
	}
	v := EducationLevel(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid EducationLevel value: %s", strVal)
	}
	*el = v
	return nil
}

// Value implements the driver.Valuer interface for EducationLevel
func (el EducationLevel) Value() (driver.Value, error) {
	return string(el), nil
}

func (el EducationLevel) IsValid() bool {
	switch el {
	case EducationNone, EducationPrimary, EducationIntermediate, EducationSecondary,
		EducationDiploma, EducationBachelors, EducationMasters, EducationDoctorate,
		EducationPostdoctorate, EducationCertificate, EducationProfessionalCert:
		return true
	default:
		return false
	}
}

// AvailabilityImmediately is the sentinel stored in availability_to_start
// for candidates who can start right away. Any other value is an ISO-8601
// date string; NULL also means immediate.
const AvailabilityImmediately = "IMMEDIATELY"

// Job represents a job posting managed through the admin dashboard.
type Job struct {
	ID               int       `json:"id" db:"id"`
	Position         string    `json:"position" db:"position"`
	Location         *string   `json:"location,omitempty" db:"location"`
	Description      *string   `json:"description,omitempty" db:"description"`
	Status           JobStatus `json:"status" db:"status"`
	Type             JobType   `json:"type" db:"type"`
	Requirements     []string  `json:"requirements" db:"requirements"`
	Responsibilities []string  `json:"responsibilities" db:"responsibilities"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`

	// Populated only when the caller asked for the relation.
	TotalApplications *int           `json:"total_applications,omitempty" db:"-"`
	Applications      []*Application `json:"applications,omitempty" db:"-"`
}

// Application represents a candidate's submission against a job posting.
type Application struct {
	ID    int `json:"id" db:"id"`
	JobID int `json:"jobId" db:"job_id"`

	FullName    string  `json:"fullName" db:"full_name"`
	Email       string  `json:"email" db:"email"`
	PhoneNumber *string `json:"phoneNumber,omitempty" db:"phone_number"`
	CurrentCity string  `json:"currentCity" db:"current_city"`
	Nationality string  `json:"nationality" db:"nationality"`

	DateOfBirth         string  `json:"date_of_birth" db:"date_of_birth"`
	AvailabilityToStart *string `json:"availabilityToStart,omitempty" db:"availability_to_start"`

	YearsOfExperience *int    `json:"yearsOfExperience,omitempty" db:"years_of_experience"`
	LastJobTitle      *string `json:"lastJobTitle,omitempty" db:"last_job_title"`
	LastCompanyName   *string `json:"lastCompanyName,omitempty" db:"last_company_name"`

	HighestEducationLevel *EducationLevel `json:"highestEducationLevel,omitempty" db:"highest_education_level"`
	FieldOfStudy          *string         `json:"fieldOfStudy,omitempty" db:"field_of_study"`
	GraduationYear        *int            `json:"graduationYear,omitempty" db:"graduation_year"`

	ExpectedSalary *ExpectedSalary `json:"expectedSalary,omitempty" db:"expected_salary"`

	Links []string `json:"links" db:"links"`
	CvURL string   `json:"cvUrl" db:"cv_url"`

	Status ApplicationStatus `json:"status" db:"status"`

	AppliedAt time.Time `json:"appliedAt" db:"applied_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Parent job. List reads attach only the position; GetByID attaches
	// the full row.
	Job *JobSummary `json:"job,omitempty" db:"-"`
}

// JobSummary is the parent-job view embedded in application payloads.
// List reads carry only the position; detail reads carry the whole row.
type JobSummary struct {
	ID               int        `json:"id,omitempty"`
	Position         string     `json:"position"`
	Location         *string    `json:"location,omitempty"`
	Description      *string    `json:"description,omitempty"`
	Status           JobStatus  `json:"status,omitempty"`
	Type             JobType    `json:"type,omitempty"`
	Requirements     []string   `json:"requirements,omitempty"`
	Responsibilities []string   `json:"responsibilities,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// Summary converts a full job row into its embedded representation.
func (j *Job) Summary() *JobSummary {
	created := j.CreatedAt
	updated := j.UpdatedAt
	return &JobSummary{
		ID:               j.ID,
		Position:         j.Position,
		Location:         j.Location,
		Description:      j.Description,
		Status:           j.Status,
		Type:             j.Type,
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		CreatedAt:        &created,
		UpdatedAt:        &updated,
	}
}

// Admin represents a back-office staff account.
type Admin struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Stats aggregates dashboard counters.
type Stats struct {
	TotalApplications       int `json:"totalApplications"`
	PendingApplications     int `json:"pendingApplications"`
	ApprovedApplications    int `json:"approvedApplications"`
	InterviewedApplications int `json:"interviewedApplications"`
	RejectedApplications    int `json:"rejectedApplications"`
	TotalJobs               int `json:"totalJobs"`
	ActiveJobs              int `json:"activeJobs"`
	ClosedJobs              int `json:"closedJobs"`
}
