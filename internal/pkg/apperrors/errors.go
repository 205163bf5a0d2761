package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvariantViolation covers inserts/updates whose RETURNING clause
	// unexpectedly produced no row despite valid-looking input. Surfaced
	// as a client error, never a crash.
	ErrInvariantViolation = errors.New("invariant violation")
)

// Catalog errors
var (
	ErrProfessorNotFound = errors.New("professor not found")
	ErrCourseNotFound    = errors.New("course not found")
	ErrClassNotFound     = errors.New("class not found")
)

// User errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrMatriculaAlreadyExists = errors.New("matricula already exists")
	ErrPasswordMismatch       = errors.New("current password does not match")
)

// Review errors
var (
	ErrRatingNotFound = errors.New("rating not found")
	ErrReportNotFound = errors.New("report not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation failure with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}
