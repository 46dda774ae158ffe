// Package context carries request-scoped values between middleware and
// handlers without leaking echo internals into the domain.
package context

import (
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyAuthUserID is the key for the authenticated user's identifier.
	KeyAuthUserID ContextKey = "auth_user_id"

	// KeyAuthSubject is the key for the authenticated subject (login).
	KeyAuthSubject ContextKey = "auth_subject"
)

// SetAuthenticated marks the request as authenticated for the remainder of
// its processing. No server-side state outlives the request.
func SetAuthenticated(c echo.Context, userID int64, subject string) {
	c.Set(string(KeyAuthUserID), userID)
	c.Set(string(KeyAuthSubject), subject)
}

// AuthenticatedUserID returns the authenticated user's identifier, if any.
func AuthenticatedUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(string(KeyAuthUserID)).(int64)

	return id, ok
}

// AuthenticatedSubject returns the authenticated subject, if any.
func AuthenticatedSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(string(KeyAuthSubject)).(string)

	return subject, ok && subject != ""
}

// IsAuthenticated reports whether an authentication has been established
// for this request by either gate.
func IsAuthenticated(c echo.Context) bool {
	_, ok := AuthenticatedUserID(c)

	return ok
}
