package repository

import (
	"context"

	"pantry/internal/domain/entity"
	"pantry/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrOfferNotFound is returned when an offer is not found.
	ErrOfferNotFound = errors.New("offer not found")

	// ErrOfferHasTransactions is returned when deleting an offer that has been claimed.
	ErrOfferHasTransactions = errors.New("offer has transactions")
)

// OfferRepository defines persistence operations for offers.
type OfferRepository interface {
	// Create persists a new offer.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID retrieves an offer without locking it.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindByIDForUpdate retrieves an offer and locks its row until the surrounding
	// database transaction ends. Must be called inside TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// Update persists the descriptive fields of an offer. The available flag is never written.
	Update(ctx context.Context, offer *entity.Offer) error

	// SetAvailability writes the available flag.
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error

	// Delete removes an offer. Offers with transactions in any status are kept.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of offers matching the filter, newest first, plus the total match count.
	List(ctx context.Context, filter entity.OfferFilter, page entity.PageRequest) ([]*entity.Offer, int64, error)

	// FindAll returns every offer matching the filter, newest first.
	FindAll(ctx context.Context, filter entity.OfferFilter) ([]*entity.Offer, error)

	// Count returns the number of offers matching the filter.
	Count(ctx context.Context, filter entity.OfferFilter) (int64, error)
}
