package middleware

import (
	"net/http"
	"strings"

	delctx "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// PolicyRule decides access for the requests it matches. Rules are
// evaluated in order; the first match wins.
type PolicyRule struct {
	// Method restricts the rule to one HTTP method; empty matches all.
	Method string
	// Prefix matches the request path by prefix. Exact takes precedence
	// when set.
	Prefix string
	// Exact matches the request path exactly.
	Exact string
	// RequireAuth rejects unauthenticated requests with 401 when true.
	RequireAuth bool
}

func (r PolicyRule) matches(method, path string) bool {
	if r.Method != "" && r.Method != method {
		return false
	}

	if r.Exact != "" {
		return path == r.Exact
	}

	return strings.HasPrefix(path, r.Prefix)
}

// PolicyMiddleware enforces the route authorization policy after the
// authentication gates have run.
type PolicyMiddleware struct {
	rules []PolicyRule
}

// NewPolicyMiddleware builds the default policy. The cookie-session and
// bearer-token surfaces stay open at this layer (the session gate guards
// the former), registration and login under /v2 are public, and the rest
// of /v2 requires an authenticated principal.
func NewPolicyMiddleware() *PolicyMiddleware {
	return &PolicyMiddleware{
		rules: []PolicyRule{
			{Prefix: "/health"},
			{Prefix: "/docs"},
			{Prefix: "/v1/"},
			{Prefix: "/auth/"},
			{Method: http.MethodPost, Exact: "/v2/auth/login"},
			{Method: http.MethodPost, Exact: "/v2/users"},
			{Prefix: "/v2/", RequireAuth: true},
		},
	}
}

// Enforce returns the echo middleware applying the rule list. Requests
// matching no rule are allowed through.
func (m *PolicyMiddleware) Enforce() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method := c.Request().Method
			path := c.Request().URL.Path

			for _, rule := range m.rules {
				if !rule.matches(method, path) {
					continue
				}

				if rule.RequireAuth && !delctx.IsAuthenticated(c) {
					return domainerrors.ErrUnauthorized
				}

				break
			}

			return next(c)
		}
	}
}
