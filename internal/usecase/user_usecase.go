// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a new user.
type CreateUserInput struct {
	Name     string
	Email    string
	Login    string
	Password string
	Type     entity.UserType
	Address  entity.Address
}

// UpdateUserInput defines the mutable account fields.
type UpdateUserInput struct {
	Name    string
	Address entity.Address
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract the delivery layer depends on.
type UserUsecase interface {
	// CreateUser registers a new account, hashing the password before it is
	// ever persisted.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// FindByID retrieves a user by identifier.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByLogin retrieves a user by login.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// SearchByName lists users whose name contains the fragment.
	SearchByName(ctx context.Context, name string) ([]*entity.User, error)

	// ListUsers lists every user.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser replaces the mutable fields and refreshes LastUpdated.
	UpdateUser(ctx context.Context, id int64, input *UpdateUserInput) (*entity.User, error)

	// ChangePassword verifies the current password before storing the hash
	// of the new one.
	ChangePassword(ctx context.Context, id int64, currentPassword, newPassword string) error

	// DeleteUser removes the account.
	DeleteUser(ctx context.Context, id int64) error

	// Authenticate checks login credentials. The failure is identical for
	// an unknown login and a wrong password.
	Authenticate(ctx context.Context, login, password string) (*entity.User, error)
}
