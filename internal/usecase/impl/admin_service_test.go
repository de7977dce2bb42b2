package impl

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/infra/persistence/postgres"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminServiceForHarness(h *engineHarness) usecase.AdminUsecase {
	return NewAdminService(AdminServiceParams{
		TxManager: postgres.NewTransactionManager(h.db),
		UserRepo:  postgres.NewUserRepository(h.db),
		OfferRepo: h.offers,
		TxRepo:    h.txs,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
}

func TestAdminService_DashboardAndDetails(t *testing.T) {
	h := newEngineHarness(t)
	srv := newAdminServiceForHarness(h)
	ctx := context.Background()

	donor := h.user(t, entity.RoleDonor)
	first := h.user(t, entity.RoleBeneficiary)
	second := h.user(t, entity.RoleBeneficiary)
	reserved := h.offer(t, donor.ID)
	collected := h.offer(t, donor.ID)
	h.offer(t, donor.ID)

	_, err := h.engine.Reserve(ctx, reserved.ID, first.ID)
	require.NoError(t, err)
	tx, err := h.engine.Reserve(ctx, collected.ID, first.ID)
	require.NoError(t, err)
	_, err = h.engine.Collect(ctx, tx.ID, first.ID)
	require.NoError(t, err)

	_, err = srv.UpdateUser(ctx, entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}, second.ID, &usecase.UpdateUserInput{IsActive: ptr(false)})
	require.NoError(t, err)

	stats, err := srv.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DashboardStats{
		TotalUsers:             3,
		ActiveUsers:            2,
		TotalOffers:            3,
		AvailableOffers:        1,
		TotalTransactions:      2,
		InProgressTransactions: 1,
	}, *stats)

	details, err := srv.GetUserDetails(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStats{TotalOffers: 0, TotalTransactions: 2, ActiveTransactions: 2}, details.Stats)

	details, err = srv.GetUserDetails(ctx, donor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), details.Stats.TotalOffers)

	_, err = srv.GetUserDetails(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAdminService_CannotModifySelf(t *testing.T) {
	h := newEngineHarness(t)
	srv := newAdminServiceForHarness(h)
	ctx := context.Background()
	admin := h.user(t, entity.RoleAdmin)

	_, err := srv.UpdateUser(ctx, admin.Identity(), admin.ID, &usecase.UpdateUserInput{IsActive: ptr(false)})
	assert.ErrorIs(t, err, domainerrors.ErrCannotModifySelf)

	_, err = srv.UpdateUser(ctx, admin.Identity(), admin.ID, &usecase.UpdateUserInput{Role: ptr(entity.RoleDonor)})
	assert.ErrorIs(t, err, domainerrors.ErrCannotModifySelf)

	assert.ErrorIs(t, srv.AnonymizeUser(ctx, admin.Identity(), admin.ID), domainerrors.ErrCannotModifySelf)

	renamed, err := srv.UpdateUser(ctx, admin.Identity(), admin.ID, &usecase.UpdateUserInput{Name: ptr("Root")})
	require.NoError(t, err)
	assert.Equal(t, "Root", renamed.Name)
}

func TestAdminService_AnonymizeUserKeepsHistory(t *testing.T) {
	h := newEngineHarness(t)
	srv := newAdminServiceForHarness(h)
	ctx := context.Background()
	admin := h.user(t, entity.RoleAdmin)
	donor := h.user(t, entity.RoleDonor)
	beneficiary := h.user(t, entity.RoleBeneficiary)
	offer := h.offer(t, donor.ID)

	_, err := h.engine.Reserve(ctx, offer.ID, beneficiary.ID)
	require.NoError(t, err)

	require.NoError(t, srv.AnonymizeUser(ctx, admin.Identity(), beneficiary.ID))

	details, err := srv.GetUserDetails(ctx, beneficiary.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AnonymizedName, details.User.Name)
	assert.False(t, details.User.IsActive)
	assert.Equal(t, int64(1), details.Stats.TotalTransactions)

	assert.ErrorIs(t, srv.AnonymizeUser(ctx, admin.Identity(), uuid.New()), domainerrors.ErrUserNotFound)
}

func TestAdminService_Listings(t *testing.T) {
	h := newEngineHarness(t)
	srv := newAdminServiceForHarness(h)
	ctx := context.Background()
	donor := h.user(t, entity.RoleDonor)
	beneficiary := h.user(t, entity.RoleBeneficiary)
	first := h.offer(t, donor.ID)
	second := h.offer(t, donor.ID)

	tx, err := h.engine.Reserve(ctx, first.ID, beneficiary.ID)
	require.NoError(t, err)
	_, err = h.engine.Cancel(ctx, tx.ID, beneficiary.ID)
	require.NoError(t, err)

	users, err := srv.ListUsers(ctx, entity.UserFilter{Role: ptr(entity.RoleDonor)}, entity.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), users.Total)
	assert.Equal(t, 50, users.Size)

	offers, err := srv.ListOffers(ctx, entity.OfferFilter{Available: ptr(true)}, entity.PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), offers.Total)

	cancelled := entity.TransactionStatusCancelled
	txs, err := srv.ListTransactions(ctx, entity.TransactionFilter{Status: &cancelled}, entity.PageRequest{})
	require.NoError(t, err)
	require.Len(t, txs.Items, 1)
	assert.Equal(t, tx.ID, txs.Items[0].ID)

	bogus := entity.TransactionStatus("lost")
	_, err = srv.ListTransactions(ctx, entity.TransactionFilter{Status: &bogus}, entity.PageRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.ErrorIs(t, srv.DeleteOffer(ctx, first.ID), domainerrors.ErrOfferHasTransactions)
	require.NoError(t, srv.DeleteOffer(ctx, second.ID))
	assert.ErrorIs(t, srv.DeleteOffer(ctx, second.ID), domainerrors.ErrOfferNotFound)

	txs, err = srv.ListTransactions(ctx, entity.TransactionFilter{OfferID: &first.ID}, entity.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), txs.Total)
}

func TestAdminService_DeleteOfferKeepsCollectedHistory(t *testing.T) {
	h := newEngineHarness(t)
	srv := newAdminServiceForHarness(h)
	ctx := context.Background()
	donor := h.user(t, entity.RoleDonor)
	beneficiary := h.user(t, entity.RoleBeneficiary)
	offer := h.offer(t, donor.ID)

	tx, err := h.engine.Reserve(ctx, offer.ID, beneficiary.ID)
	require.NoError(t, err)
	_, err = h.engine.Collect(ctx, tx.ID, beneficiary.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, srv.DeleteOffer(ctx, offer.ID), domainerrors.ErrOfferHasTransactions)

	collected := entity.TransactionStatusCollected
	txs, err := srv.ListTransactions(ctx, entity.TransactionFilter{Status: &collected}, entity.PageRequest{})
	require.NoError(t, err)
	require.Len(t, txs.Items, 1)
	assert.Equal(t, tx.ID, txs.Items[0].ID)
}
