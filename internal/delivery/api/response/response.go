package response

import (
	"net/http"

	deliverycontext "dashboard/internal/delivery/context"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)

	// Redirect tells the dashboard where to send the browser to sign in again
	Redirect string `json:"redirect,omitempty"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// Reauthenticate returns a 401 that points the client at the login page
func Reauthenticate(c echo.Context, errorCode, message, redirect string) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error: &ErrorInfo{
			Code:     errorCode,
			Message:  message,
			Redirect: redirect,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError converts domain errors to HTTP responses. Credential and
// session failures become a 401 carrying redirect. Anything that is not an
// AppError is returned for the central error handler.
func HandleAppError(c echo.Context, err error, redirect string) error {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		return errors.WithStack(err)
	}

	if domainerrors.RequiresReauth(err) {
		return Reauthenticate(c, appErr.ErrorCode(), appErr.Message(), redirect)
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}
