package usecase

import (
	"context"

	"pantry/internal/domain/service"
)

// AuditResult is the verdict on the offer named by a transaction event.
type AuditResult string

const (
	// AuditConsistent means the offer is available exactly when it has no active transaction.
	AuditConsistent AuditResult = "consistent"
	// AuditInconsistent means availability and transactions of the offer disagree.
	AuditInconsistent AuditResult = "inconsistent"
	// AuditSkipped means the offer no longer exists.
	AuditSkipped AuditResult = "skipped"
)

// EventAuditUsecase consumes committed transaction events and re-checks the offer they touched.
type EventAuditUsecase interface {
	AuditTransactionEvent(ctx context.Context, event *service.TransactionEvent) (AuditResult, error)
}
