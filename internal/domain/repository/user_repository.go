// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"pantry/internal/domain/entity"
	"pantry/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID. Reads may be served by a replica.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDFromPrimary retrieves a user from the primary, for authentication decisions.
	FindByIDFromPrimary(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies name, email, role and active flag of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// List returns one page of users matching the filter, newest first, plus the total match count.
	List(ctx context.Context, filter entity.UserFilter, page entity.PageRequest) ([]*entity.User, int64, error)

	// Count returns the number of users matching the filter.
	Count(ctx context.Context, filter entity.UserFilter) (int64, error)
}
