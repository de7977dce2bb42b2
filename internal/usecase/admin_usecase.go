package usecase

import (
	"context"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUserInput lists the account fields an admin may change.
type UpdateUserInput struct {
	Name     *string
	Role     *entity.Role
	IsActive *bool
}

// UserDetails is a user with aggregate activity counts.
type UserDetails struct {
	User  *entity.User
	Stats entity.UserStats
}

// AdminUsecase defines the administrative read layer and account management.
type AdminUsecase interface {
	ListUsers(ctx context.Context, filter entity.UserFilter, page entity.PageRequest) (*entity.Page[*entity.User], error)
	GetUserDetails(ctx context.Context, userID uuid.UUID) (*UserDetails, error)
	UpdateUser(ctx context.Context, actor entity.Identity, userID uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// AnonymizeUser removes personal data from an account instead of deleting it.
	AnonymizeUser(ctx context.Context, actor entity.Identity, userID uuid.UUID) error

	ListOffers(ctx context.Context, filter entity.OfferFilter, page entity.PageRequest) (*entity.Page[*entity.Offer], error)
	DeleteOffer(ctx context.Context, offerID uuid.UUID) error
	ListTransactions(ctx context.Context, filter entity.TransactionFilter, page entity.PageRequest) (*entity.Page[*entity.Transaction], error)
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
}
