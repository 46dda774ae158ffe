// Package entity contains the core business objects of the project.
package entity

import "time"

// Session is a server-held record linking an opaque cookie-carried
// identifier to an authenticated user. Only the session gate and the
// session usecase read or write it.
type Session struct {
	ID        string // Opaque identifier, transported via the session cookie.
	UserID    int64  // The authenticated user this session belongs to.
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
