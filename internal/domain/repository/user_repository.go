// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when the unique email constraint is violated.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrDuplicateLogin is returned when the unique login constraint is violated.
var ErrDuplicateLogin = errors.New("login already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete
// implementation. Uniqueness of email and login under concurrent creation
// is enforced by the store's unique constraints.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByLogin retrieves a single user by their login.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every user, ordered by ID.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// SearchByName retrieves users whose name contains the given fragment,
	// case-insensitively.
	SearchByName(ctx context.Context, name string) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given ID.
	Delete(ctx context.Context, id int64) error
}
