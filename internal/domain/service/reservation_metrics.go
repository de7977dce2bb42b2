package service

import "time"

// Reservation operation outcomes recorded by ReservationMetrics.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// ReservationMetrics records the behaviour of the reservation engine.
type ReservationMetrics interface {
	// ObserveOperation records one finished engine operation.
	ObserveOperation(operation, outcome string, elapsed time.Duration)

	// IncRetry records one retried attempt after a serialization conflict.
	IncRetry(operation string)
}
