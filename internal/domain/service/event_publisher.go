package service

import (
	"context"
	"time"
)

// Transaction event types.
const (
	TransactionEventReserved       = "transaction.reserved"
	TransactionEventCollected      = "transaction.collected"
	TransactionEventCancelled      = "transaction.cancelled"
	TransactionEventForceCancelled = "transaction.force_cancelled"
)

// TransactionEvent is emitted after a reservation state transition has been committed.
type TransactionEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	Type           string    `json:"type"`
	TransactionID  string    `json:"transaction_id"`
	OfferID        string    `json:"offer_id"`
	BeneficiaryID  string    `json:"beneficiary_id"`
	CreatorID      string    `json:"creator_id"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Status         string    `json:"status"`
	OfferAvailable bool      `json:"offer_available"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishTransactionEvent publishes a committed transaction transition.
	PublishTransactionEvent(ctx context.Context, event *TransactionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
