// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all
// dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// CreateUser registers a new account. The plaintext password is replaced by
// its hash before the entity reaches the repository; email and login
// uniqueness is enforced by the store's constraints.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	userType := input.Type
	if !userType.IsValid() {
		userType = entity.UserTypeCustomer
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Login:    input.Login,
		Password: hashed,
		Type:     userType,
		Address:  input.Address,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailAlreadyExists
		}
		if errors.Is(err, repository.ErrDuplicateLogin) {
			return nil, domainerrors.ErrLoginAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("User created", slog.Int64("userID", user.ID), slog.String("login", user.Login))

	return user, nil
}

// FindByID retrieves a user by identifier.
func (srv *userService) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// FindByLogin retrieves a user by login.
func (srv *userService) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	user, err := srv.userRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by login")
	}

	return user, nil
}

// FindByEmail retrieves a user by email.
func (srv *userService) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// SearchByName lists users whose name contains the fragment.
func (srv *userService) SearchByName(ctx context.Context, name string) ([]*entity.User, error) {
	users, err := srv.userRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return users, nil
}

// ListUsers lists every user.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser replaces name and address and refreshes LastUpdated.
func (srv *userService) UpdateUser(ctx context.Context, id int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Address = input.Address
	user.LastUpdated = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// ChangePassword verifies the current password and stores the hash of the
// new one.
func (srv *userService) ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error {
	user, err := srv.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(currentPassword, user.Password) {
		return domainerrors.ErrPasswordMismatch
	}

	hashed, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	user.Password = hashed
	user.LastUpdated = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store new password")
	}

	srv.logger.Info("Password changed", slog.Int64("userID", id))

	return nil
}

// DeleteUser removes the account.
func (srv *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.logger.Info("User deleted", slog.Int64("userID", id))

	return nil
}

// Authenticate checks login credentials. An unknown login and a wrong
// password produce the same failure so account existence is not leaked.
func (srv *userService) Authenticate(ctx context.Context, login, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up login")
	}

	if !srv.hasher.Check(password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}
