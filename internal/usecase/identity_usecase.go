package usecase

import (
	"context"

	"pantry/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	User        *entity.User
}

// IdentityUsecase defines account registration and token based authentication.
type IdentityUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate resolves an access token into the identity of an active user.
	Authenticate(ctx context.Context, token string) (entity.Identity, error)

	Me(ctx context.Context, identity entity.Identity) (*entity.User, error)
}
