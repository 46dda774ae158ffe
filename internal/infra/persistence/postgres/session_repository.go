package postgres

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session record.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByID retrieves an unexpired session by its identifier. An expired
// record is deleted on the way out and reported as not found.
func (repo *sessionRepository) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	session := toSessionDomain(&sessionM)
	if session.Expired(time.Now()) {
		// Lazy purge; a racing delete is harmless.
		_ = repo.db.WithContext(ctx).Delete(&model.SessionModel{}, "id = ?", id).Error

		return nil, repository.ErrSessionNotFound
	}

	return session, nil
}

// Delete removes a session by its identifier.
func (repo *sessionRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).Delete(&model.SessionModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return errors.Wrap(err, "failed to delete session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteByUserID removes every session belonging to a user.
func (repo *sessionRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.SessionModel{}, "user_id = ?", userID).Error; err != nil {
		return errors.Wrap(err, "failed to delete sessions for user")
	}

	return nil
}

// DeleteExpired removes every expired session record.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.SessionModel{}, "expires_at <= ?", time.Now()).Error; err != nil {
		return errors.Wrap(err, "failed to delete expired sessions")
	}

	return nil
}

// --- Mapper functions ---

func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:        data.ID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
