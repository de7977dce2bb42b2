package repository

import (
	"context"

	"pantry/internal/errors"
)

// ErrSerializationConflict is returned when the store aborts a database transaction
// because it conflicted with a concurrent one (serialization failure, deadlock, lock timeout).
// The whole unit of work may be retried.
var ErrSerializationConflict = errors.New("serialization conflict")

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository instance bound to the current transaction.
	UserRepo() UserRepository

	// AuthRepo returns an AuthRepository instance bound to the current transaction.
	AuthRepo() AuthRepository

	// OfferRepo returns an OfferRepository instance bound to the current transaction.
	OfferRepo() OfferRepository

	// TransactionRepo returns a TransactionRepository instance bound to the current transaction.
	TransactionRepo() TransactionRepository
}
