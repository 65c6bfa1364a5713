package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Error codes returned to API clients
const (
	// Authentication errors
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserDisabled          = "AUTH_002"
	ErrUserNotFound          = "AUTH_003"
	ErrInvalidToken          = "AUTH_006"
	ErrExpiredToken          = "AUTH_007"
	ErrInsufficientPrivilege = "AUTH_008"

	// Validation errors
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"

	// Resource errors
	ErrNotFound         = "RES_001"
	ErrConflict         = "RES_002"
	ErrMethodNotAllowed = "RES_003"

	// Server errors
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrCommunication     = "SRV_004"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrConflict:              http.StatusConflict,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError is the JSON body of every error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor returns the HTTP status mapped to code, 500 for unknown codes
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError writes the standard error body with the status mapped to code
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error into an APIError with the given code
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
