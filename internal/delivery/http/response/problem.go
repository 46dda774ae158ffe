// Package response renders API responses. Errors follow the problem
// document shape: type, title, status, detail plus optional properties.
package response

import (
	"github.com/labstack/echo/v4"
)

// ProblemTypeBase prefixes every machine-checkable problem type URI.
const ProblemTypeBase = "https://api.accounts.dev/problems/"

// ProblemDetail is the structured error payload returned for every
// non-2xx outcome.
type ProblemDetail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Problem writes a problem document with the given status and type suffix.
func Problem(c echo.Context, status int, typeSuffix, title, detail string) error {
	return ProblemWithProperties(c, status, typeSuffix, title, detail, nil)
}

// ProblemWithProperties writes a problem document carrying extra
// machine-readable properties (e.g. per-field validation errors).
func ProblemWithProperties(c echo.Context, status int, typeSuffix, title, detail string, properties map[string]any) error {
	return c.JSON(status, ProblemDetail{
		Type:       ProblemTypeBase + typeSuffix,
		Title:      title,
		Status:     status,
		Detail:     detail,
		Properties: properties,
	})
}
