// Package errors defines the application error taxonomy. Every error that
// crosses the delivery boundary implements AppError so the central HTTP
// error handler can render it as a problem document.
package errors

import (
	"net/http"

	"accounts/internal/errors"
)

// AppError is the interface for application-specific errors.
type AppError interface {
	error
	Status() int        // HTTP status code
	TypeSuffix() string // Machine-checkable problem type suffix
	Title() string      // Human-readable problem title
	Detail() string     // Problem detail text
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	status     int
	typeSuffix string
	title      string
	detail     string
}

// NewBaseError creates a new base error.
func NewBaseError(status int, typeSuffix, title, detail string) *BaseError {
	return &BaseError{
		status:     status,
		typeSuffix: typeSuffix,
		title:      title,
		detail:     detail,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.detail
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Status returns the HTTP status code.
func (e *BaseError) Status() int {
	return e.status
}

// TypeSuffix returns the problem type suffix.
func (e *BaseError) TypeSuffix() string {
	return e.typeSuffix
}

// Title returns the problem title.
func (e *BaseError) Title() string {
	return e.title
}

// Detail returns the problem detail text.
func (e *BaseError) Detail() string {
	return e.detail
}

// WithDetail returns a copy of the error carrying a different detail text.
func (e *BaseError) WithDetail(detail string) *BaseError {
	return &BaseError{
		status:     e.status,
		typeSuffix: e.typeSuffix,
		title:      e.title,
		detail:     detail,
	}
}

// Predefined error types.
var (
	// Authentication / authorization.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"unauthorized",
		"Unauthorized",
		"Authentication is required to access this resource.",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"forbidden",
		"Forbidden",
		"You do not have permission to access this resource.",
	)

	// ErrInvalidCredentials deliberately reads the same for an unknown
	// login and a wrong password so account existence is not leaked.
	ErrInvalidCredentials = NewBaseError(
		http.StatusNotFound,
		"resource-not-found",
		"Resource Not Found",
		"Invalid credentials. Please check your login and password.",
	)

	// User lookups.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"resource-not-found",
		"Resource Not Found",
		"User not found with the provided details.",
	)

	// Domain rule violations.
	ErrEmailAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"domain-validation-error",
		"Domain Validation Error",
		"The email provided is already registered.",
	)

	ErrLoginAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"domain-validation-error",
		"Domain Validation Error",
		"The login provided is already registered.",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"domain-validation-error",
		"Domain Validation Error",
		"The current password provided is incorrect.",
	)

	// Request shape.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"validation-error",
		"Validation Error",
		"Validation failed",
	)

	ErrMalformedRequest = NewBaseError(
		http.StatusBadRequest,
		"malformed-request",
		"Malformed Request",
		"Request body is malformed or missing. Please check your JSON format.",
	)

	ErrMissingParameter = NewBaseError(
		http.StatusBadRequest,
		"missing-parameter",
		"Missing Required Parameter",
		"A required request parameter is missing.",
	)

	ErrTypeMismatch = NewBaseError(
		http.StatusBadRequest,
		"type-mismatch",
		"Type Mismatch",
		"A request value has the wrong type.",
	)

	ErrMethodNotAllowed = NewBaseError(
		http.StatusMethodNotAllowed,
		"method-not-allowed",
		"Method Not Allowed",
		"The HTTP method is not supported for this endpoint.",
	)

	ErrUnsupportedMediaType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"unsupported-media-type",
		"Unsupported Media Type",
		"The request media type is not supported.",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"internal-error",
		"Internal Server Error",
		"An unexpected internal error occurred.",
	)
)
