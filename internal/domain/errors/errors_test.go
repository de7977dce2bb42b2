package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"pantry/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDuplicateClaimError_MessageByPriorStatus(t *testing.T) {
	tests := []struct {
		status entity.TransactionStatus
		want   string
	}{
		{entity.TransactionStatusReserved, "You have already reserved this offer"},
		{entity.TransactionStatusCollected, "You have already collected this offer"},
		{entity.TransactionStatusCancelled, "You already have a cancelled transaction for this offer"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			err := NewDuplicateClaimError(tt.status)

			assert.True(t, stderrors.Is(err, ErrDuplicateClaim))

			var appErr AppError
			require.True(t, stderrors.As(err, &appErr))
			assert.Equal(t, tt.want, appErr.Message())
			assert.Equal(t, "DUPLICATE_CLAIM", appErr.ErrorCode())
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		})
	}
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrOfferNotFound.WrapMessage("reserve")

	assert.True(t, stderrors.Is(err, ErrOfferNotFound))

	var appErr AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("quantity must be positive")

	assert.Equal(t, "quantity must be positive", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.True(t, stderrors.Is(detailed, ErrValidationFailed))
	assert.False(t, stderrors.Is(detailed, ErrOfferNotFound))
}
