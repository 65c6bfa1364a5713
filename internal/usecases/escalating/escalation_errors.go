package escalating

import (
	"errors"
	"fmt"
)

var (
	ErrEscalationNotFound  = errors.New("escalation not found")
	ErrInvalidEscalation   = errors.New("invalid escalation")
	ErrMissingRequiredData = errors.New("missing required field")
	ErrDatabaseOperation   = errors.New("database operation error")
)

// EscalationError carries the API code for a failed escalation operation
type EscalationError struct {
	Err          error
	Code         string
	EscalationID int
	Details      string
}

func (e *EscalationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *EscalationError) Unwrap() error {
	return e.Err
}

func NewEscalationError(err error, code string, escalationID int, details string) *EscalationError {
	return &EscalationError{
		Err:          err,
		Code:         code,
		EscalationID: escalationID,
		Details:      details,
	}
}
