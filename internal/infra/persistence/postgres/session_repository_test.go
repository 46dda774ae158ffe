package postgres

import (
	"context"
	"testing"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(userID int64, ttl time.Duration) *entity.Session {
	now := time.Now()

	return &entity.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestSessionRepository_CreateAndFind(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	session := newTestSession(42, time.Hour)
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), found.UserID)
}

func TestSessionRepository_FindByID_Unknown(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), "no-such-session")

	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_FindByID_ExpiredIsPurged(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	session := newTestSession(42, -time.Minute)
	require.NoError(t, repo.Create(ctx, session))

	_, err := repo.FindByID(ctx, session.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	// The expired row is gone, not just filtered.
	var count int64
	require.NoError(t, db.Table("sessions").Where("id = ?", session.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	session := newTestSession(42, time.Hour)
	require.NoError(t, repo.Create(ctx, session))

	require.NoError(t, repo.Delete(ctx, session.ID))
	assert.ErrorIs(t, repo.Delete(ctx, session.ID), repository.ErrSessionNotFound)
}

func TestSessionRepository_DeleteByUserID(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	first := newTestSession(42, time.Hour)
	second := newTestSession(42, time.Hour)
	other := newTestSession(7, time.Hour)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, other))

	require.NoError(t, repo.DeleteByUserID(ctx, 42))

	_, err := repo.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	_, err = repo.FindByID(ctx, second.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	kept, err := repo.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), kept.UserID)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	live := newTestSession(42, time.Hour)
	stale := newTestSession(42, -time.Minute)
	require.NoError(t, repo.Create(ctx, live))
	require.NoError(t, repo.Create(ctx, stale))

	require.NoError(t, repo.DeleteExpired(ctx))

	_, err := repo.FindByID(ctx, stale.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	_, err = repo.FindByID(ctx, live.ID)
	assert.NoError(t, err)
}
