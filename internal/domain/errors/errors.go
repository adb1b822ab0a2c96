package errors

import (
	"fmt"
	"net/http"

	"dashboard/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
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

// Predefined error types
var (
	// ErrCredentialExpired means Discord rejected the identity's bearer token.
	// It aborts the whole request; the client must re-authenticate.
	ErrCredentialExpired = NewBaseError(
		http.StatusUnauthorized,
		"CREDENTIAL_EXPIRED",
		"Discord authorization expired, please sign in again",
	)

	// ErrSessionInvalid means no usable identity/credential pair was found.
	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Session is missing or invalid, please sign in again",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// RequiresReauth reports whether err should send the client back to login.
func RequiresReauth(err error) bool {
	return errors.Is(err, ErrCredentialExpired) || errors.Is(err, ErrSessionInvalid)
}

// UpstreamUnavailableError means a data source failed for a reason other than auth.
// The data class it feeds contributes nothing to the result.
type UpstreamUnavailableError struct {
	Source string
	Err    error
}

// NewUpstreamUnavailableError annotates err with the source it came from.
func NewUpstreamUnavailableError(source string, err error) error {
	return &UpstreamUnavailableError{Source: source, Err: err}
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("upstream %s unavailable: %v", e.Source, e.Err)
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Err
}

// PermissionResolutionError is a failure while deciding access to a single guild.
// It resolves to deny for that guild only.
type PermissionResolutionError struct {
	GuildID string
	Err     error
}

func (e *PermissionResolutionError) Error() string {
	return fmt.Sprintf("resolve permission for guild %s: %v", e.GuildID, e.Err)
}

func (e *PermissionResolutionError) Unwrap() error {
	return e.Err
}

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
	return errors.Wrap(e.err, e.details).Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
