package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the lifecycle state of a claim on an offer.
type TransactionStatus string

const (
	TransactionStatusReserved  TransactionStatus = "reserved"
	TransactionStatusCollected TransactionStatus = "collected"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// ActiveTransactionStatuses hold an offer; at most one transaction per offer may be in one of them.
var ActiveTransactionStatuses = []TransactionStatus{TransactionStatusReserved, TransactionStatusCollected}

// IsValid checks if the TransactionStatus is a valid value.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusReserved, TransactionStatusCollected, TransactionStatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the status still holds the offer.
func (s TransactionStatus) IsActive() bool {
	return s == TransactionStatusReserved || s == TransactionStatusCollected
}

// Transaction is a beneficiary's claim on an offer.
type Transaction struct {
	ID            uuid.UUID
	OfferID       uuid.UUID
	BeneficiaryID uuid.UUID
	Status        TransactionStatus
	// CollectedAt stays set after an admin force cancel, marking the offer as consumed.
	CollectedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerID implements Owned.
func (t *Transaction) OwnerID() uuid.UUID {
	return t.BeneficiaryID
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	Status        *TransactionStatus
	BeneficiaryID *uuid.UUID
	OfferID       *uuid.UUID
	// Collected keeps only transactions that were collected at some point, cancelled ones included.
	Collected bool
}

// DashboardStats is the admin overview of the marketplace.
type DashboardStats struct {
	TotalUsers             int64 `json:"total_users"`
	ActiveUsers            int64 `json:"active_users"`
	TotalOffers            int64 `json:"total_offers"`
	AvailableOffers        int64 `json:"available_offers"`
	TotalTransactions      int64 `json:"total_transactions"`
	InProgressTransactions int64 `json:"in_progress_transactions"`
}
