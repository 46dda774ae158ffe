package impl

import (
	"context"
	"log/slog"
	"time"

	"accounts/config"
	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface on top of the
// session repository.
type sessionService struct {
	sessionRepo repository.SessionRepository
	ttl         time.Duration
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	ttl := 24 * time.Hour
	if params.Config != nil && params.Config.Session.TTL > 0 {
		ttl = params.Config.Session.TTL
	}

	return &sessionService{
		sessionRepo: params.SessionRepo,
		ttl:         ttl,
		logger:      params.Logger,
	}
}

// Create opens a new session with a random opaque identifier.
func (srv *sessionService) Create(ctx context.Context, userID int64) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(srv.ttl),
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.logger.Info("Session created", slog.Int64("userID", userID))

	return session, nil
}

// Find returns the unexpired session for the identifier.
func (srv *sessionService) Find(ctx context.Context, id string) (*entity.Session, error) {
	return srv.sessionRepo.FindByID(ctx, id)
}

// Invalidate destroys the session; unknown identifiers are ignored so
// logout stays idempotent.
func (srv *sessionService) Invalidate(ctx context.Context, id string) error {
	if err := srv.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to invalidate session")
	}

	return nil
}

// InvalidateAllForUser destroys every session belonging to the user.
func (srv *sessionService) InvalidateAllForUser(ctx context.Context, userID int64) error {
	if err := srv.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to invalidate user sessions")
	}

	srv.logger.Info("All sessions invalidated", slog.Int64("userID", userID))

	return nil
}

// CleanupExpired removes expired session records from the store.
func (srv *sessionService) CleanupExpired(ctx context.Context) error {
	if err := srv.sessionRepo.DeleteExpired(ctx); err != nil {
		return errors.Wrap(err, "failed to clean up expired sessions")
	}

	return nil
}
