package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session exists for an identifier,
// or when the matching record has already expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the operations for server-side session
// persistence. Sessions are keyed by the opaque identifier carried in the
// session cookie; expired records are treated as absent.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves an unexpired session by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Delete removes a session by its identifier. Deleting an unknown
	// session returns ErrSessionNotFound.
	Delete(ctx context.Context, id string) error

	// DeleteByUserID removes every session belonging to a user.
	DeleteByUserID(ctx context.Context, userID int64) error

	// DeleteExpired removes every expired session record.
	DeleteExpired(ctx context.Context) error
}
