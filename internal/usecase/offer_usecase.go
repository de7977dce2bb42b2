package usecase

import (
	"context"
	"time"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateOfferInput defines the data required to publish an offer.
type CreateOfferInput struct {
	Title       string
	Description string
	Kind        entity.OfferKind
	Quantity    int
	Location    string
	Latitude    *float64
	Longitude   *float64
	ExpiresAt   *time.Time
}

// NearbyQuery restricts listings to offers within RadiusMeters of a point.
type NearbyQuery struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// ListOffersInput selects a page of available offers.
type ListOffersInput struct {
	Page entity.PageRequest
	Kind *entity.OfferKind
	Near *NearbyQuery
}

// OfferUsecase defines offer publishing and browsing operations.
type OfferUsecase interface {
	CreateOffer(ctx context.Context, actor entity.Identity, input *CreateOfferInput) (*entity.Offer, error)
	GetOffer(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error)
	ListAvailable(ctx context.Context, input *ListOffersInput) (*entity.Page[*entity.Offer], error)
	UpdateOffer(ctx context.Context, offerID uuid.UUID, patch *entity.OfferPatch, actor entity.Identity) (*entity.Offer, error)
	DeleteOffer(ctx context.Context, offerID uuid.UUID, actor entity.Identity) error
}
