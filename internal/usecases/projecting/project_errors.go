package projecting

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrInvalidProject      = errors.New("invalid project")
	ErrInvalidMilestone    = errors.New("invalid milestone")
	ErrInvalidRisk         = errors.New("invalid risk")
	ErrMissingRequiredData = errors.New("missing required field")
	ErrDatabaseOperation   = errors.New("database operation error")
)

// ProjectError carries the API code for a failed project operation
type ProjectError struct {
	Err       error
	Code      string
	ProjectID int
	Details   string
}

func (e *ProjectError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProjectError) Unwrap() error {
	return e.Err
}

func NewProjectError(err error, code string, projectID int, details string) *ProjectError {
	return &ProjectError{
		Err:       err,
		Code:      code,
		ProjectID: projectID,
		Details:   details,
	}
}
