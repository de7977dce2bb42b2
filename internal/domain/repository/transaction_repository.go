package repository

import (
	"context"

	"pantry/internal/domain/entity"
	"pantry/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for transaction persistence.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrDuplicateTransaction is returned when the (offer, beneficiary) pair already has a transaction.
	ErrDuplicateTransaction = errors.New("transaction already exists for offer and beneficiary")
)

// TransactionRepository defines persistence operations for claims on offers.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, tx *entity.Transaction) error

	// FindByID retrieves a transaction without locking it.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDForUpdate retrieves a transaction and locks its row.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByOfferAndBeneficiary returns the transaction of a beneficiary on an offer, in any status.
	FindByOfferAndBeneficiary(ctx context.Context, offerID, beneficiaryID uuid.UUID) (*entity.Transaction, error)

	// FindActiveByOffer returns the reserved or collected transaction of an offer, if any.
	FindActiveByOffer(ctx context.Context, offerID uuid.UUID) (*entity.Transaction, error)

	// UpdateStatus writes the status of a transaction.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) error

	// ListByBeneficiary returns all transactions of a beneficiary, newest first.
	ListByBeneficiary(ctx context.Context, beneficiaryID uuid.UUID) ([]*entity.Transaction, error)

	// List returns one page of transactions matching the filter, newest first, plus the total match count.
	List(ctx context.Context, filter entity.TransactionFilter, page entity.PageRequest) ([]*entity.Transaction, int64, error)

	// Count returns the number of transactions matching the filter.
	Count(ctx context.Context, filter entity.TransactionFilter) (int64, error)

	// CountActiveByBeneficiary returns the number of reserved or collected transactions of a beneficiary.
	CountActiveByBeneficiary(ctx context.Context, beneficiaryID uuid.UUID) (int64, error)
}
