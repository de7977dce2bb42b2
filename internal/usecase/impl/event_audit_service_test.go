package impl

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/service"
	"pantry/internal/infra/persistence/postgres"
	"pantry/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAuditMetrics struct {
	verdicts map[string]int
}

func (m *recordingAuditMetrics) ObserveAudit(eventType, result string) {
	m.verdicts[eventType+"/"+result]++
}

func TestEventAuditService_AuditTransactionEvent(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()
	auditMetrics := &recordingAuditMetrics{verdicts: map[string]int{}}
	auditor := NewEventAuditService(EventAuditServiceParams{
		TxManager: postgres.NewTransactionManager(h.db),
		Metrics:   auditMetrics,
		Logger:    newDiscardLogger(),
	})

	donor := h.user(t, entity.RoleDonor)
	beneficiary := h.user(t, entity.RoleBeneficiary)
	offer := h.offer(t, donor.ID)

	_, err := h.engine.Reserve(ctx, offer.ID, beneficiary.ID)
	require.NoError(t, err)
	require.NotEmpty(t, h.publisher.events)
	reserved := h.publisher.events[len(h.publisher.events)-1]

	result, err := auditor.AuditTransactionEvent(ctx, reserved)
	require.NoError(t, err)
	assert.Equal(t, usecase.AuditConsistent, result)

	require.NoError(t, h.offers.SetAvailability(ctx, offer.ID, true))
	result, err = auditor.AuditTransactionEvent(ctx, reserved)
	require.NoError(t, err)
	assert.Equal(t, usecase.AuditInconsistent, result)

	removed := h.offer(t, donor.ID)
	require.NoError(t, h.offers.Delete(ctx, removed.ID))
	orphan := *reserved
	orphan.OfferID = removed.ID.String()
	result, err = auditor.AuditTransactionEvent(ctx, &orphan)
	require.NoError(t, err)
	assert.Equal(t, usecase.AuditSkipped, result)

	_, err = auditor.AuditTransactionEvent(ctx, &service.TransactionEvent{Type: service.TransactionEventReserved, OfferID: "bogus"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.Equal(t, map[string]int{
		service.TransactionEventReserved + "/consistent":   1,
		service.TransactionEventReserved + "/inconsistent": 1,
		service.TransactionEventReserved + "/skipped":      1,
	}, auditMetrics.verdicts)
}

func TestEventAuditService_ForceCancelAfterCollect(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()
	auditor := NewEventAuditService(EventAuditServiceParams{
		TxManager: postgres.NewTransactionManager(h.db),
		Logger:    newDiscardLogger(),
	})

	donor := h.user(t, entity.RoleDonor)
	beneficiary := h.user(t, entity.RoleBeneficiary)
	offer := h.offer(t, donor.ID)

	tx, err := h.engine.Reserve(ctx, offer.ID, beneficiary.ID)
	require.NoError(t, err)
	_, err = h.engine.Collect(ctx, tx.ID, beneficiary.ID)
	require.NoError(t, err)
	_, err = h.engine.AdminForceCancel(ctx, tx.ID)
	require.NoError(t, err)

	forceCancelled := h.publisher.events[len(h.publisher.events)-1]
	require.Equal(t, service.TransactionEventForceCancelled, forceCancelled.Type)
	require.Equal(t, string(entity.TransactionStatusCollected), forceCancelled.PreviousStatus)

	result, err := auditor.AuditTransactionEvent(ctx, forceCancelled)
	require.NoError(t, err)
	assert.Equal(t, usecase.AuditConsistent, result)

	// Push delivery is unordered: the collect event may arrive after the force cancel.
	lateCollected := h.publisher.events[len(h.publisher.events)-2]
	require.Equal(t, service.TransactionEventCollected, lateCollected.Type)
	result, err = auditor.AuditTransactionEvent(ctx, lateCollected)
	require.NoError(t, err)
	assert.Equal(t, usecase.AuditConsistent, result)
}

func TestEventAuditService_UnavailableWithoutClaimHistory(t *testing.T) {
	h := newEngineHarness(t)
	ctx := context.Background()
	auditor := NewEventAuditService(EventAuditServiceParams{
		TxManager: postgres.NewTransactionManager(h.db),
		Logger:    newDiscardLogger(),
	})

	donor := h.user(t, entity.RoleDonor)
	beneficiary := h.user(t, entity.RoleBeneficiary)
	offer := h.offer(t, donor.ID)

	tx, err := h.engine.Reserve(ctx, offer.ID, beneficiary.ID)
	require.NoError(t, err)
	_, err = h.engine.Cancel(ctx, tx.ID, beneficiary.ID)
	require.NoError(t, err)
	cancelled := h.publisher.events[len(h.publisher.events)-1]

	result, err := auditor.AuditTransactionEvent(ctx, cancelled)
	require.NoError(t, err)
	assert.Equal(t, usecase.AuditConsistent, result)

	require.NoError(t, h.offers.SetAvailability(ctx, offer.ID, false))
	result, err = auditor.AuditTransactionEvent(ctx, cancelled)
	require.NoError(t, err)
	assert.Equal(t, usecase.AuditInconsistent, result)
}
