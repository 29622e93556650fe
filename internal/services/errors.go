package services

import "errors"

// Define common service errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("conflict") // e.g., duplicate email, state conflict
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrJobUnavailable     = errors.New("job is not open for applications")
)

// ValidationError carries per-field messages collected during submission
// checks. Insertion order of Fields is preserved separately in Order so the
// response renders fields in the order they were validated.
type ValidationError struct {
	Fields map[string]string
	Order  []string
}

func (e *ValidationError) Error() string { return "validation failed" }

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error { return ErrValidation }

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) add(field, message string) {
	if _, seen := e.Fields[field]; !seen {
		e.Order = append(e.Order, field)
	}
	e.Fields[field] = message
}

func (e *ValidationError) empty() bool { return len(e.Fields) == 0 }
