package errors

import (
	"net/http"

	"ezytutor/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// Recoverable registration outcomes, rendered back into the registration form.
	ErrDuplicateUser = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_USER",
		"User Id already exists",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	// Recoverable sign-in outcomes, rendered back into the sign-in form.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User id not found",
		"",
	)

	ErrInvalidLogin = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_LOGIN",
		"Invalid login",
		"",
	)

	// ErrVerificationFailed covers a stored hash that cannot be verified
	// (e.g. corrupt encoding). Rendered as an invalid login, never a crash.
	ErrVerificationFailed = NewBaseError(
		http.StatusUnauthorized,
		"VERIFICATION_FAILED",
		"Invalid login",
		"",
	)

	// Upstream-fatal errors; nothing is committed locally on these paths.
	ErrProfileServiceUnavailable = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_SERVICE_UNAVAILABLE",
		"Tutor profile service is unavailable",
		"",
	)

	ErrCredentialWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"CREDENTIAL_WRITE_FAILED",
		"Failed to save login credentials",
		"",
	)

	ErrCredentialStoreFailed = NewBaseError(
		http.StatusInternalServerError,
		"CREDENTIAL_STORE_FAILED",
		"Credential store error",
		"",
	)

	ErrTemplateRender = NewBaseError(
		http.StatusInternalServerError,
		"TEMPLATE_RENDER_FAILED",
		"Template error",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Submitted form data is invalid",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
