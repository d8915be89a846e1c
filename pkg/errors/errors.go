// pkg/errors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Error types
const (
	ErrValidation     = "VALIDATION_ERROR"
	ErrInvalidOption  = "INVALID_OPTION"
	ErrInvalidRecord  = "INVALID_RECORD"
	ErrInvalidToken   = "INVALID_TOKEN"
	ErrAccessDenied   = "ACCESS_DENIED"
	ErrMalformedInput = "MALFORMED_INPUT"
	ErrNotFound       = "NOT_FOUND"
	ErrUnauthorized   = "UNAUTHORIZED"
	ErrForbidden      = "FORBIDDEN"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
	ErrBadRequest     = "BAD_REQUEST"
)

// AppError represents a custom application error
type AppError struct {
	Type       string `json:"type"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s - %s", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(errorType string, statusCode int, message string, details ...string) *AppError {
	var detail string
	if len(details) > 0 {
		detail = details[0]
	}

	return &AppError{
		Type:       errorType,
		StatusCode: statusCode,
		Message:    message,
		Details:    detail,
	}
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errorType string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetErrorType extracts the error type from an error
func GetErrorType(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// GetStatusCode extracts the status code from an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 500 // Default to internal server error
}

// Helper functions to create common errors
func NewInvalidOptionError(name string) *AppError {
	return NewAppError(ErrInvalidOption, 400, fmt.Sprintf("the option '%s' is not a valid option for a QR code", name))
}

func NewInvalidRecordError(details string) *AppError {
	return NewAppError(ErrInvalidRecord, 400, "invalid record", details)
}

func NewInvalidTokenError(details string) *AppError {
	return NewAppError(ErrInvalidToken, 403, "wrong token signature", details)
}

func NewAccessDeniedError(details string) *AppError {
	return NewAppError(ErrAccessDenied, 403, "access denied", details)
}

func NewMalformedInputError(details string) *AppError {
	return NewAppError(ErrMalformedInput, 400, "malformed payload data", details)
}
