package service

import (
	"time"
)

// TokenClaims is the decoded, verified content of a bearer token.
type TokenClaims struct {
	// Subject is the login the token was issued for.
	Subject string
	// UserID is the embedded user identifier. It is nil when the claim is
	// absent or arrived in an unrecognized shape; numeric claims are decoded
	// permissively since JSON round-trips may widen or narrow the integer.
	UserID *int64
	// IssuedAt and ExpiresAt bound the token's lifetime.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the claims are past their expiry at the given instant.
func (c *TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// TokenService issues and verifies signed, self-contained bearer tokens.
// No other component may construct or decode one.
type TokenService interface {
	// Generate creates a signed token embedding the subject, the user
	// identifier and an expiry of now + the configured TTL.
	Generate(subject string, userID int64) (string, error)

	// Parse verifies the token's signature and expiry and returns its
	// claims. Every parse, signature or expiry failure collapses to an
	// error; callers treat any error as "invalid".
	Parse(tokenString string) (*TokenClaims, error)

	// Validate reports whether the token is well signed, unexpired and
	// carries exactly the expected subject.
	Validate(tokenString, expectedSubject string) bool

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
