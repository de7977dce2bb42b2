package impl

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/infra/persistence/postgres"
	mockRepo "pantry/internal/mocks/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func newOfferServiceForHarness(h *engineHarness) usecase.OfferUsecase {
	return NewOfferService(OfferServiceParams{
		TxManager: postgres.NewTransactionManager(h.db),
		OfferRepo: h.offers,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
}

func TestOfferService_CreateOffer_RoleAndValidation(t *testing.T) {
	offerRepo := mockRepo.NewMockOfferRepository(t)
	srv := NewOfferService(OfferServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		OfferRepo: offerRepo,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()
	donor := entity.Identity{UserID: uuid.New(), Role: entity.RoleDonor}

	_, err := srv.CreateOffer(ctx, entity.Identity{UserID: uuid.New(), Role: entity.RoleBeneficiary},
		&usecase.CreateOfferInput{Title: "Rice", Kind: entity.OfferKindGoods, Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)

	invalid := []*usecase.CreateOfferInput{
		{Title: " ", Kind: entity.OfferKindGoods, Quantity: 1},
		{Title: "Rice", Kind: "vouchers", Quantity: 1},
		{Title: "Rice", Kind: entity.OfferKindGoods, Quantity: 0},
		{Title: "Rice", Kind: entity.OfferKindGoods, Quantity: 1, Latitude: ptr(10.0)},
		{Title: "Rice", Kind: entity.OfferKindGoods, Quantity: 1, Latitude: ptr(91.0), Longitude: ptr(0.0)},
	}
	for _, input := range invalid {
		_, err := srv.CreateOffer(ctx, donor, input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}

	offerRepo.EXPECT().Create(ctx, mock.MatchedBy(func(o *entity.Offer) bool {
		return o.Available && o.CreatorID == donor.UserID && o.Title == "Rice"
	})).Return(nil)

	offer, err := srv.CreateOffer(ctx, donor, &usecase.CreateOfferInput{Title: " Rice ", Kind: entity.OfferKindGoods, Quantity: 2})
	require.NoError(t, err)
	assert.True(t, offer.Available)
}

func TestOfferService_UpdateNeverTouchesAvailability(t *testing.T) {
	h := newEngineHarness(t)
	srv := newOfferServiceForHarness(h)
	ctx := context.Background()
	creator := h.user(t, entity.RoleDonor)
	beneficiary := h.user(t, entity.RoleBeneficiary)
	offer := h.offer(t, creator.ID)

	_, err := h.engine.Reserve(ctx, offer.ID, beneficiary.ID)
	require.NoError(t, err)

	updated, err := srv.UpdateOffer(ctx, offer.ID, &entity.OfferPatch{Title: ptr("Hot soup"), Quantity: ptr(5)}, creator.Identity())
	require.NoError(t, err)
	assert.Equal(t, "Hot soup", updated.Title)
	assert.False(t, h.available(t, offer.ID))
	h.requireAvailabilityMatchesClaims(t, offer.ID)

	_, err = srv.UpdateOffer(ctx, offer.ID, &entity.OfferPatch{Title: ptr("Mine now")}, beneficiary.Identity())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = srv.UpdateOffer(ctx, offer.ID, &entity.OfferPatch{Quantity: ptr(0)}, creator.Identity())
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.UpdateOffer(ctx, uuid.New(), &entity.OfferPatch{}, creator.Identity())
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}

func TestOfferService_DeleteOffer(t *testing.T) {
	h := newEngineHarness(t)
	srv := newOfferServiceForHarness(h)
	ctx := context.Background()
	creator := h.user(t, entity.RoleDonor)
	stranger := h.user(t, entity.RolePartner)
	admin := h.user(t, entity.RoleAdmin)
	own := h.offer(t, creator.ID)
	other := h.offer(t, creator.ID)

	assert.ErrorIs(t, srv.DeleteOffer(ctx, own.ID, stranger.Identity()), domainerrors.ErrForbidden)
	require.NoError(t, srv.DeleteOffer(ctx, own.ID, creator.Identity()))
	require.NoError(t, srv.DeleteOffer(ctx, other.ID, admin.Identity()))

	_, err := srv.GetOffer(ctx, own.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}

func TestOfferService_DeleteOfferKeepsCollectedHistory(t *testing.T) {
	h := newEngineHarness(t)
	srv := newOfferServiceForHarness(h)
	ctx := context.Background()
	creator := h.user(t, entity.RoleDonor)
	beneficiary := h.user(t, entity.RoleBeneficiary)
	offer := h.offer(t, creator.ID)

	tx, err := h.engine.Reserve(ctx, offer.ID, beneficiary.ID)
	require.NoError(t, err)
	_, err = h.engine.Collect(ctx, tx.ID, beneficiary.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, srv.DeleteOffer(ctx, offer.ID, creator.Identity()), domainerrors.ErrOfferHasTransactions)

	_, err = srv.GetOffer(ctx, offer.ID)
	require.NoError(t, err)

	mine, err := h.engine.ListMine(ctx, beneficiary.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, entity.TransactionStatusCollected, mine[0].Status)
}

func TestOfferService_ListAvailable(t *testing.T) {
	h := newEngineHarness(t)
	srv := newOfferServiceForHarness(h)
	ctx := context.Background()
	creator := h.user(t, entity.RoleDonor)
	beneficiary := h.user(t, entity.RoleBeneficiary)

	for range 3 {
		h.offer(t, creator.ID)
	}
	claimed := h.offer(t, creator.ID)
	_, err := h.engine.Reserve(ctx, claimed.ID, beneficiary.ID)
	require.NoError(t, err)

	page, err := srv.ListAvailable(ctx, &usecase.ListOffersInput{Page: entity.PageRequest{Page: 1, Size: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Len(t, page.Items, 2)

	page, err = srv.ListAvailable(ctx, &usecase.ListOffersInput{Page: entity.PageRequest{Page: 2, Size: 2}})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	for _, offer := range page.Items {
		assert.NotEqual(t, claimed.ID, offer.ID)
	}
}

func TestOfferService_ListAvailableNearby(t *testing.T) {
	h := newEngineHarness(t)
	srv := newOfferServiceForHarness(h)
	ctx := context.Background()
	creator := h.user(t, entity.RoleDonor)

	place := func(title string, lat, lon float64) *entity.Offer {
		offer := &entity.Offer{
			Title:     title,
			Kind:      entity.OfferKindMeals,
			Quantity:  1,
			Latitude:  ptr(lat),
			Longitude: ptr(lon),
			Available: true,
			CreatorID: creator.ID,
		}
		require.NoError(t, h.offers.Create(ctx, offer))

		return offer
	}

	// Around Taipei Main Station.
	near := place("near", 25.0480, 121.5170)
	nearer := place("nearer", 25.0478, 121.5171)
	place("far", 25.1000, 121.6000)
	h.offer(t, creator.ID) // no coordinates

	page, err := srv.ListAvailable(ctx, &usecase.ListOffersInput{
		Near: &usecase.NearbyQuery{Latitude: 25.0478, Longitude: 121.5170, RadiusMeters: 500},
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, nearer.ID, page.Items[0].ID)
	assert.Equal(t, near.ID, page.Items[1].ID)

	_, err = srv.ListAvailable(ctx, &usecase.ListOffersInput{
		Near: &usecase.NearbyQuery{Latitude: 25.0, Longitude: 121.5, RadiusMeters: 0},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
