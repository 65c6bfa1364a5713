package financing

import (
	"errors"
	"fmt"
)

var (
	ErrFinancialDataNotFound = errors.New("financial data not found")
	ErrInvalidFinancialData  = errors.New("invalid financial data")
	ErrMissingRequiredData   = errors.New("missing required field")
	ErrDatabaseOperation     = errors.New("database operation error")
)

// FinancialError carries the API code for a failed financial data operation
type FinancialError struct {
	Err     error
	Code    string
	ID      int
	Details string
}

func (e *FinancialError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *FinancialError) Unwrap() error {
	return e.Err
}

func NewFinancialError(err error, code string, id int, details string) *FinancialError {
	return &FinancialError{
		Err:     err,
		Code:    code,
		ID:      id,
		Details: details,
	}
}
