// Package middleware contains the HTTP request pipeline components: the
// two authentication gates, the route authorization policy and the central
// error handler.
package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"accounts/internal/delivery/http/response"
	domainerrors "accounts/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders every error that escapes a handler or gate as a
// problem document. Handlers never write error payloads themselves.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates the central error handler.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeAppError(appErr, c)

		return
	}

	var validationErrs playground.ValidationErrors
	if errors.As(err, &validationErrs) {
		m.writeValidationError(validationErrs, c)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.writeHTTPError(httpErr, c)

		return
	}

	// Everything else is an unexpected failure; log it, leak nothing.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Problem(c, http.StatusInternalServerError,
		domainerrors.ErrInternal.TypeSuffix(),
		domainerrors.ErrInternal.Title(),
		domainerrors.ErrInternal.Detail(),
	)
}

func (m *ErrorMiddleware) writeAppError(appErr domainerrors.AppError, c echo.Context) {
	var properties map[string]any
	if appErr.Status() == http.StatusUnauthorized || appErr.Status() == http.StatusForbidden {
		properties = map[string]any{
			"path":   c.Request().URL.Path,
			"method": c.Request().Method,
		}
	}

	_ = response.ProblemWithProperties(c, appErr.Status(),
		appErr.TypeSuffix(), appErr.Title(), appErr.Detail(), properties)
}

func (m *ErrorMiddleware) writeValidationError(validationErrs playground.ValidationErrors, c echo.Context) {
	fields := make(map[string]any, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = fmt.Sprintf("failed on the '%s' rule", fieldErr.Tag())
	}

	_ = response.ProblemWithProperties(c, http.StatusBadRequest,
		domainerrors.ErrValidationFailed.TypeSuffix(),
		domainerrors.ErrValidationFailed.Title(),
		domainerrors.ErrValidationFailed.Detail(),
		map[string]any{"errors": fields},
	)
}

func (m *ErrorMiddleware) writeHTTPError(httpErr *echo.HTTPError, c echo.Context) {
	switch httpErr.Code {
	case http.StatusBadRequest:
		// Binding failures surface here. A field of the wrong JSON type
		// is reported as a type mismatch, anything else as malformed.
		var typeErr *json.UnmarshalTypeError
		if errors.As(httpErr.Internal, &typeErr) {
			_ = response.ProblemWithProperties(c, http.StatusBadRequest,
				domainerrors.ErrTypeMismatch.TypeSuffix(),
				domainerrors.ErrTypeMismatch.Title(),
				fmt.Sprintf("Invalid value for field '%s'. Expected type: %s", typeErr.Field, typeErr.Type),
				map[string]any{"field": typeErr.Field, "expectedType": typeErr.Type.String()},
			)

			return
		}

		_ = response.Problem(c, http.StatusBadRequest,
			domainerrors.ErrMalformedRequest.TypeSuffix(),
			domainerrors.ErrMalformedRequest.Title(),
			domainerrors.ErrMalformedRequest.Detail(),
		)
	case http.StatusNotFound:
		_ = response.Problem(c, http.StatusNotFound,
			"resource-not-found", "Resource Not Found",
			"The requested resource was not found.",
		)
	case http.StatusMethodNotAllowed:
		_ = response.Problem(c, http.StatusMethodNotAllowed,
			domainerrors.ErrMethodNotAllowed.TypeSuffix(),
			domainerrors.ErrMethodNotAllowed.Title(),
			fmt.Sprintf("HTTP method '%s' is not supported for this endpoint", c.Request().Method),
		)
	case http.StatusUnsupportedMediaType:
		_ = response.Problem(c, http.StatusUnsupportedMediaType,
			domainerrors.ErrUnsupportedMediaType.TypeSuffix(),
			domainerrors.ErrUnsupportedMediaType.Title(),
			fmt.Sprintf("Media type '%s' is not supported", c.Request().Header.Get(echo.HeaderContentType)),
		)
	default:
		_ = response.Problem(c, httpErr.Code,
			"http-error", http.StatusText(httpErr.Code),
			fmt.Sprintf("%v", httpErr.Message),
		)
	}
}
