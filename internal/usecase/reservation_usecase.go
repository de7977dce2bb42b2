// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// ReservationUsecase is the only writer of offer availability and transaction status.
// Every transition runs as one atomic read-modify-write with the offer row locked.
type ReservationUsecase interface {
	// Reserve claims an available offer for a beneficiary.
	Reserve(ctx context.Context, offerID, beneficiaryID uuid.UUID) (*entity.Transaction, error)

	// Collect marks a reserved transaction as collected by its beneficiary.
	Collect(ctx context.Context, transactionID, requesterID uuid.UUID) (*entity.Transaction, error)

	// Cancel cancels a reserved transaction on behalf of its beneficiary and releases the offer.
	Cancel(ctx context.Context, transactionID, requesterID uuid.UUID) (*entity.Transaction, error)

	// AdminForceCancel cancels a reserved or collected transaction regardless of ownership.
	AdminForceCancel(ctx context.Context, transactionID uuid.UUID) (*entity.Transaction, error)

	GetTransaction(ctx context.Context, transactionID uuid.UUID, actor entity.Identity) (*entity.Transaction, error)
	ListMine(ctx context.Context, beneficiaryID uuid.UUID) ([]*entity.Transaction, error)
	History(ctx context.Context, userID uuid.UUID, actor entity.Identity) ([]*entity.Transaction, error)

	// PickupQR renders the pickup QR code of a reserved transaction.
	PickupQR(ctx context.Context, transactionID, requesterID uuid.UUID) ([]byte, error)

	// CollectByQR collects the transaction identified by a scanned pickup QR payload.
	CollectByQR(ctx context.Context, qrData string, requesterID uuid.UUID) (*entity.Transaction, error)
}
