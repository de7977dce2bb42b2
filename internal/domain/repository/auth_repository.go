// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pantry/internal/domain/entity"
	"pantry/internal/errors"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when an authentication method is not found.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository defines the standard operations for authentication-related persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)

	// UpdateProviderUserID rewrites the login identifier of all credentials of a user.
	UpdateProviderUserID(ctx context.Context, userID uuid.UUID, providerUserID string) error
}
