package staffing

import (
	"errors"
	"fmt"
)

var (
	ErrResourceNotFound    = errors.New("resource not found")
	ErrEmployeeIDTaken     = errors.New("employee id already in use")
	ErrInvalidResource     = errors.New("invalid resource")
	ErrDatabaseOperation   = errors.New("database operation error")
	ErrMissingRequiredData = errors.New("missing required field")
	ErrInvalidLookahead    = errors.New("invalid lookahead")
)

// ResourceError carries the API code for a failed resource operation
type ResourceError struct {
	Err        error
	Code       string
	ResourceID int
	Details    string
}

func (e *ResourceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

func NewResourceError(err error, code string, details string) *ResourceError {
	return &ResourceError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewResourceErrorWithID(err error, code string, resourceID int, details string) *ResourceError {
	return &ResourceError{
		Err:        err,
		Code:       code,
		ResourceID: resourceID,
		Details:    details,
	}
}
