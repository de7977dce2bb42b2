package impl

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	domainservice "pantry/internal/domain/service"
	mockRepo "pantry/internal/mocks/repository"
	mockService "pantry/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reservationMocks struct {
	factory   *mockRepo.MockRepositoryFactory
	offerRepo *mockRepo.MockOfferRepository
	txRepo    *mockRepo.MockTransactionRepository
	publisher *mockService.MockEventPublisher
	metrics   *mockService.MockReservationMetrics
}

func newReservationMocks(t *testing.T) *reservationMocks {
	m := &reservationMocks{
		factory:   mockRepo.NewMockRepositoryFactory(t),
		offerRepo: mockRepo.NewMockOfferRepository(t),
		txRepo:    mockRepo.NewMockTransactionRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
		metrics:   mockService.NewMockReservationMetrics(t),
	}
	m.factory.EXPECT().OfferRepo().Return(m.offerRepo).Maybe()
	m.factory.EXPECT().TransactionRepo().Return(m.txRepo).Maybe()

	return m
}

func (m *reservationMocks) service(t *testing.T, txManager repository.TransactionManager) *reservationService {
	return NewReservationService(ReservationServiceParams{
		TxManager:      txManager,
		OfferRepo:      m.offerRepo,
		TxRepo:         m.txRepo,
		QRCodeService:  mockService.NewMockQRCodeService(t),
		EventPublisher: m.publisher,
		Metrics:        m.metrics,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	}).(*reservationService)
}

func TestReservationService_Reserve_Success(t *testing.T) {
	m := newReservationMocks(t)
	srv := m.service(t, mockTxManager(t, m.factory))
	ctx := context.Background()

	offer := &entity.Offer{ID: uuid.New(), CreatorID: uuid.New(), Available: true}
	beneficiaryID := uuid.New()

	m.offerRepo.EXPECT().FindByIDForUpdate(ctx, offer.ID).Return(offer, nil)
	m.txRepo.EXPECT().FindByOfferAndBeneficiary(ctx, offer.ID, beneficiaryID).Return(nil, repository.ErrTransactionNotFound)
	m.txRepo.EXPECT().FindActiveByOffer(ctx, offer.ID).Return(nil, repository.ErrTransactionNotFound)
	m.txRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(_ context.Context, tx *entity.Transaction) { tx.ID = uuid.New() }).
		Return(nil)
	m.offerRepo.EXPECT().SetAvailability(ctx, offer.ID, false).Return(nil)
	m.publisher.EXPECT().
		PublishTransactionEvent(mock.Anything, mock.MatchedBy(func(e *domainservice.TransactionEvent) bool {
			return e.Type == domainservice.TransactionEventReserved &&
				e.OfferID == offer.ID.String() &&
				e.CreatorID == offer.CreatorID.String() &&
				!e.OfferAvailable
		})).
		Return(nil)
	m.metrics.EXPECT().ObserveOperation(operationReserve, domainservice.OutcomeSuccess, mock.AnythingOfType("time.Duration")).Return()

	tx, err := srv.Reserve(ctx, offer.ID, beneficiaryID)

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusReserved, tx.Status)
	assert.Equal(t, beneficiaryID, tx.BeneficiaryID)
}

func TestReservationService_Reserve_RejectionOrder(t *testing.T) {
	creatorID := uuid.New()
	beneficiaryID := uuid.New()

	tests := []struct {
		name    string
		offer   *entity.Offer
		prior   *entity.Transaction
		active  *entity.Transaction
		wantErr error
	}{
		{
			name:    "self reservation wins over unavailability",
			offer:   &entity.Offer{CreatorID: beneficiaryID, Available: false},
			wantErr: domainerrors.ErrSelfReservationForbidden,
		},
		{
			name:    "prior claim is a duplicate even when offer is unavailable",
			offer:   &entity.Offer{CreatorID: creatorID, Available: false},
			prior:   &entity.Transaction{Status: entity.TransactionStatusCollected},
			wantErr: domainerrors.ErrDuplicateClaim,
		},
		{
			name:    "active claim of another beneficiary",
			offer:   &entity.Offer{CreatorID: creatorID, Available: false},
			active:  &entity.Transaction{Status: entity.TransactionStatusReserved},
			wantErr: domainerrors.ErrOfferAlreadyClaimed,
		},
		{
			name:    "unavailable without active claim",
			offer:   &entity.Offer{CreatorID: creatorID, Available: false},
			wantErr: domainerrors.ErrOfferUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newReservationMocks(t)
			srv := m.service(t, mockTxManager(t, m.factory))
			ctx := context.Background()
			offerID := uuid.New()
			tt.offer.ID = offerID

			m.offerRepo.EXPECT().FindByIDForUpdate(ctx, offerID).Return(tt.offer, nil)
			if tt.offer.CreatorID != beneficiaryID {
				if tt.prior != nil {
					m.txRepo.EXPECT().FindByOfferAndBeneficiary(ctx, offerID, beneficiaryID).Return(tt.prior, nil)
				} else {
					m.txRepo.EXPECT().FindByOfferAndBeneficiary(ctx, offerID, beneficiaryID).Return(nil, repository.ErrTransactionNotFound)
					if tt.active != nil {
						m.txRepo.EXPECT().FindActiveByOffer(ctx, offerID).Return(tt.active, nil)
					} else {
						m.txRepo.EXPECT().FindActiveByOffer(ctx, offerID).Return(nil, repository.ErrTransactionNotFound)
					}
				}
			}
			m.metrics.EXPECT().ObserveOperation(operationReserve, domainservice.OutcomeRejected, mock.Anything).Return()

			_, err := srv.Reserve(ctx, offerID, beneficiaryID)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReservationService_Reserve_UniqueViolationIsDuplicateClaim(t *testing.T) {
	m := newReservationMocks(t)
	srv := m.service(t, mockTxManager(t, m.factory))
	ctx := context.Background()
	offer := &entity.Offer{ID: uuid.New(), CreatorID: uuid.New(), Available: true}
	beneficiaryID := uuid.New()

	m.offerRepo.EXPECT().FindByIDForUpdate(ctx, offer.ID).Return(offer, nil)
	m.txRepo.EXPECT().FindByOfferAndBeneficiary(ctx, offer.ID, beneficiaryID).Return(nil, repository.ErrTransactionNotFound)
	m.txRepo.EXPECT().FindActiveByOffer(ctx, offer.ID).Return(nil, repository.ErrTransactionNotFound)
	m.txRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateTransaction)
	m.metrics.EXPECT().ObserveOperation(operationReserve, domainservice.OutcomeRejected, mock.Anything).Return()

	_, err := srv.Reserve(ctx, offer.ID, beneficiaryID)

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateClaim)
}

func TestReservationService_RetriesSerializationConflicts(t *testing.T) {
	m := newReservationMocks(t)
	ctx := context.Background()
	offerID := uuid.New()
	beneficiaryID := uuid.New()
	offer := &entity.Offer{ID: offerID, CreatorID: uuid.New(), Available: true}

	attempts := 0
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			attempts++
			if attempts == 1 {
				return errors.Wrap(repository.ErrSerializationConflict, "could not serialize access")
			}

			return fn(m.factory)
		})

	m.offerRepo.EXPECT().FindByIDForUpdate(ctx, offerID).Return(offer, nil)
	m.txRepo.EXPECT().FindByOfferAndBeneficiary(ctx, offerID, beneficiaryID).Return(nil, repository.ErrTransactionNotFound)
	m.txRepo.EXPECT().FindActiveByOffer(ctx, offerID).Return(nil, repository.ErrTransactionNotFound)
	m.txRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.offerRepo.EXPECT().SetAvailability(ctx, offerID, false).Return(nil)
	m.publisher.EXPECT().PublishTransactionEvent(mock.Anything, mock.Anything).Return(nil)
	m.metrics.EXPECT().IncRetry(operationReserve).Return().Once()
	m.metrics.EXPECT().ObserveOperation(operationReserve, domainservice.OutcomeSuccess, mock.Anything).Return()

	srv := m.service(t, txManager)
	_, err := srv.Reserve(ctx, offerID, beneficiaryID)

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestReservationService_ConflictAfterMaxAttempts(t *testing.T) {
	m := newReservationMocks(t)
	ctx := context.Background()

	attempts := 0
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(context.Context, func(repository.RepositoryFactory) error) error {
			attempts++

			return repository.ErrSerializationConflict
		})

	m.metrics.EXPECT().IncRetry(operationCollect).Return().Times(2)
	m.metrics.EXPECT().ObserveOperation(operationCollect, domainservice.OutcomeConflict, mock.Anything).Return()

	srv := m.service(t, txManager)
	_, err := srv.Collect(ctx, uuid.New(), uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrReservationConflict)
	assert.Equal(t, 3, attempts)

	appErr, ok := asAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestReservationService_PublishFailureDoesNotFailTransition(t *testing.T) {
	m := newReservationMocks(t)
	srv := m.service(t, mockTxManager(t, m.factory))
	ctx := context.Background()

	offer := &entity.Offer{ID: uuid.New(), CreatorID: uuid.New(), Available: false}
	tx := &entity.Transaction{ID: uuid.New(), OfferID: offer.ID, BeneficiaryID: uuid.New(), Status: entity.TransactionStatusReserved}
	locked := *tx

	m.txRepo.EXPECT().FindByID(ctx, tx.ID).Return(tx, nil)
	m.offerRepo.EXPECT().FindByIDForUpdate(ctx, offer.ID).Return(offer, nil)
	m.txRepo.EXPECT().FindByIDForUpdate(ctx, tx.ID).Return(&locked, nil)
	m.txRepo.EXPECT().UpdateStatus(ctx, tx.ID, entity.TransactionStatusCancelled).Return(nil)
	m.offerRepo.EXPECT().SetAvailability(ctx, offer.ID, true).Return(nil)
	m.publisher.EXPECT().PublishTransactionEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	m.metrics.EXPECT().ObserveOperation(operationCancel, domainservice.OutcomeSuccess, mock.Anything).Return()

	cancelled, err := srv.Cancel(ctx, tx.ID, tx.BeneficiaryID)

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusCancelled, cancelled.Status)
}

func TestReservationService_StorageErrorIsNotRetried(t *testing.T) {
	m := newReservationMocks(t)
	ctx := context.Background()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("connection refused")).Once()
	m.metrics.EXPECT().ObserveOperation(operationForceCancel, domainservice.OutcomeError, mock.Anything).Return()

	srv := m.service(t, txManager)
	_, err := srv.AdminForceCancel(ctx, uuid.New())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrReservationConflict)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, domainservice.OutcomeSuccess, outcomeOf(nil))
	assert.Equal(t, domainservice.OutcomeConflict, outcomeOf(domainerrors.ErrReservationConflict.WrapMessage("x")))
	assert.Equal(t, domainservice.OutcomeRejected, outcomeOf(domainerrors.ErrOfferUnavailable))
	assert.Equal(t, domainservice.OutcomeError, outcomeOf(errors.New("boom")))
	assert.Equal(t, domainservice.OutcomeRejected, outcomeOf(errors.Wrap(domainerrors.NewDuplicateClaimError(entity.TransactionStatusReserved), "x")))
}
