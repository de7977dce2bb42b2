package postgres

import (
	"testing"

	"pantry/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapDBError_TagsSerializationConflicts(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		conflict bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgSerializationFailure}, true},
		{"deadlock", &pgconn.PgError{Code: pgDeadlockDetected}, true},
		{"lock not available", &pgconn.PgError{Code: pgLockNotAvailable}, true},
		{"sqlite busy", errors.New("database is locked (5) (SQLITE_BUSY)"), true},
		{"unique violation", &pgconn.PgError{Code: pgUniqueViolation}, false},
		{"plain error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapDBError(tt.err, "failed to lock offer")

			assert.Equal(t, tt.conflict, errors.Is(wrapped, repository.ErrSerializationConflict))
			assert.Contains(t, wrapped.Error(), "failed to lock offer")
		})
	}

	assert.NoError(t, wrapDBError(nil, "noop"))
}

func TestConstraintViolationHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgUniqueViolation}))
	assert.True(t, isUniqueConstraintViolation(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, isUniqueConstraintViolation(errors.New("timeout")))

	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
}
