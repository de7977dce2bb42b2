package postgres

import (
	"strings"

	"pantry/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes inspected by the repositories.
const (
	pgUniqueViolation       = "23505"
	pgForeignKeyViolation   = "23503"
	pgNotNullViolation      = "23502"
	pgCheckViolation        = "23514"
	pgSerializationFailure  = "40001"
	pgDeadlockDetected      = "40P01"
	pgLockNotAvailable      = "55P03"
	sqliteBusyMessageSuffix = "database is locked"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgUniqueViolation {
		return true
	}

	// Drivers without error translation only expose the message.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint") || strings.Contains(errMsg, "duplicate key")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgForeignKeyViolation {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

func isNotNullConstraintViolation(err error) bool {
	if pgErrorCode(err) == pgNotNullViolation {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "not null constraint")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == pgCheckViolation {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}

// isSerializationConflict reports whether the database aborted the statement because of a
// concurrent transaction. These are the only storage errors worth retrying.
func isSerializationConflict(err error) bool {
	switch pgErrorCode(err) {
	case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), sqliteBusyMessageSuffix)
}

// wrapDBError wraps a storage error, tagging retryable conflicts with
// repository.ErrSerializationConflict so use cases can match them.
func wrapDBError(err error, message string) error {
	if err == nil {
		return nil
	}
	if isSerializationConflict(err) {
		return errors.Wrap(&serializationConflictError{cause: err}, message)
	}

	return errors.Wrap(err, message)
}

type serializationConflictError struct {
	cause error
}

func (e *serializationConflictError) Error() string {
	return repository.ErrSerializationConflict.Error() + ": " + e.cause.Error()
}

func (e *serializationConflictError) Is(target error) bool {
	return target == repository.ErrSerializationConflict
}

func (e *serializationConflictError) Unwrap() error {
	return e.cause
}
