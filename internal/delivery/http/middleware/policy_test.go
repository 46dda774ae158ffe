package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	delctx "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runPolicy(t *testing.T, method, path string, authenticated bool) error {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if authenticated {
		delctx.SetAuthenticated(c, 42, "ada")
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	return NewPolicyMiddleware().Enforce()(next)(c)
}

func TestPolicy_PublicRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "health", method: http.MethodGet, path: "/health"},
		{name: "cookie surface user list", method: http.MethodGet, path: "/v1/users"},
		{name: "cookie surface login", method: http.MethodPost, path: "/auth/login"},
		{name: "token login", method: http.MethodPost, path: "/v2/auth/login"},
		{name: "token registration", method: http.MethodPost, path: "/v2/users"},
		{name: "unmatched path", method: http.MethodGet, path: "/favicon.ico"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, runPolicy(t, tt.method, tt.path, false))
		})
	}
}

func TestPolicy_TokenSurfaceRequiresAuthentication(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "user list", method: http.MethodGet, path: "/v2/users"},
		{name: "user by id", method: http.MethodGet, path: "/v2/users/7"},
		{name: "update", method: http.MethodPut, path: "/v2/users/7"},
		{name: "delete", method: http.MethodDelete, path: "/v2/users/7"},
		{name: "logout", method: http.MethodPost, path: "/v2/auth/logout"},
		{name: "login with wrong method", method: http.MethodGet, path: "/v2/auth/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runPolicy(t, tt.method, tt.path, false)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

			assert.NoError(t, runPolicy(t, tt.method, tt.path, true))
		})
	}
}

func TestPolicy_FirstMatchWins(t *testing.T) {
	// /v2/auth/login matches the public rule before the catch-all /v2/ rule.
	assert.NoError(t, runPolicy(t, http.MethodPost, "/v2/auth/login", false))
}
