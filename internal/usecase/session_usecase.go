package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// SessionUsecase manages the server-side sessions backing V1
// authentication. Only the session gate and the V1 auth handlers call it.
type SessionUsecase interface {
	// Create opens a new session for the user and returns it, including
	// the opaque identifier the cookie will carry.
	Create(ctx context.Context, userID int64) (*entity.Session, error)

	// Find returns the unexpired session for the identifier, or
	// repository.ErrSessionNotFound.
	Find(ctx context.Context, id string) (*entity.Session, error)

	// Invalidate destroys the session. Invalidating an unknown session is
	// not an error; logout is idempotent.
	Invalidate(ctx context.Context, id string) error

	// InvalidateAllForUser destroys every session belonging to the user,
	// logging them out of every browser at once.
	InvalidateAllForUser(ctx context.Context, userID int64) error

	// CleanupExpired removes expired session records from the store.
	CleanupExpired(ctx context.Context) error
}
