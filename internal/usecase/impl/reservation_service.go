// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"pantry/config"
	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"
	"pantry/internal/errors"
	"pantry/internal/usecase"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Engine operation names, used as metric labels and log fields.
const (
	operationReserve     = "reserve"
	operationCollect     = "collect"
	operationCancel      = "cancel"
	operationForceCancel = "force_cancel"

	publishTimeout = 5 * time.Second
)

// reservationService implements the ReservationUsecase interface.
type reservationService struct {
	txManager      repository.TransactionManager
	offerRepo      repository.OfferRepository
	txRepo         repository.TransactionRepository
	qrCodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	metrics        service.ReservationMetrics
	maxAttempts    int
	retryBaseDelay time.Duration
	retryMaxDelay  time.Duration
	logger         *slog.Logger
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OfferRepo      repository.OfferRepository
	TxRepo         repository.TransactionRepository
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher     `optional:"true"`
	Metrics        service.ReservationMetrics `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	srv := &reservationService{
		txManager:      params.TxManager,
		offerRepo:      params.OfferRepo,
		txRepo:         params.TxRepo,
		qrCodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		metrics:        params.Metrics,
		maxAttempts:    1,
		logger:         params.Logger,
	}

	if params.Config != nil && params.Config.Reservation != nil {
		srv.maxAttempts = max(params.Config.Reservation.MaxAttempts, 1)
		srv.retryBaseDelay = params.Config.Reservation.RetryBaseDelay
		srv.retryMaxDelay = params.Config.Reservation.RetryMaxDelay
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Reserve claims an offer. The offer row stays locked from the first read until commit,
// so at most one reservation per offer can be accepted.
func (srv *reservationService) Reserve(ctx context.Context, offerID, beneficiaryID uuid.UUID) (*entity.Transaction, error) {
	var created *entity.Transaction
	var offer *entity.Offer

	err := srv.runTransition(ctx, operationReserve, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()
		txRepo := repoFactory.TransactionRepo()

		locked, err := offerRepo.FindByIDForUpdate(ctx, offerID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return domainerrors.ErrOfferNotFound.WrapMessage("failed to reserve offer")
			}

			return errors.Wrap(err, "failed to lock offer")
		}

		if locked.CreatorID == beneficiaryID {
			return domainerrors.ErrSelfReservationForbidden.WrapMessage("failed to reserve offer")
		}

		prior, err := txRepo.FindByOfferAndBeneficiary(ctx, offerID, beneficiaryID)
		if err == nil {
			return errors.Wrap(domainerrors.NewDuplicateClaimError(prior.Status), "failed to reserve offer")
		}
		if !errors.Is(err, repository.ErrTransactionNotFound) {
			return errors.Wrap(err, "failed to look up prior claim")
		}

		if _, err := txRepo.FindActiveByOffer(ctx, offerID); err == nil {
			return domainerrors.ErrOfferAlreadyClaimed.WrapMessage("failed to reserve offer")
		} else if !errors.Is(err, repository.ErrTransactionNotFound) {
			return errors.Wrap(err, "failed to look up active claim")
		}

		if !locked.Available {
			return domainerrors.ErrOfferUnavailable.WrapMessage("failed to reserve offer")
		}

		tx := &entity.Transaction{
			OfferID:       offerID,
			BeneficiaryID: beneficiaryID,
			Status:        entity.TransactionStatusReserved,
		}
		if err := txRepo.Create(ctx, tx); err != nil {
			if errors.Is(err, repository.ErrDuplicateTransaction) {
				return errors.Wrap(domainerrors.NewDuplicateClaimError(entity.TransactionStatusReserved), "failed to reserve offer")
			}

			return errors.Wrap(err, "failed to create transaction")
		}

		if err := offerRepo.SetAvailability(ctx, offerID, false); err != nil {
			return errors.Wrap(err, "failed to mark offer unavailable")
		}
		locked.Available = false

		created = tx
		offer = locked

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Reserve rejected",
			slog.String("offerID", offerID.String()),
			slog.String("beneficiaryID", beneficiaryID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Offer reserved",
		slog.String("offerID", offerID.String()),
		slog.String("transactionID", created.ID.String()),
	)
	srv.publish(ctx, service.TransactionEventReserved, created, offer, "")

	return created, nil
}

// Collect marks a reserved transaction as collected. Availability is untouched.
func (srv *reservationService) Collect(ctx context.Context, transactionID, requesterID uuid.UUID) (*entity.Transaction, error) {
	return srv.applyTransition(ctx, operationCollect, service.TransactionEventCollected, transactionID,
		func(current *entity.Transaction) (entity.TransactionStatus, bool, error) {
			if current.BeneficiaryID != requesterID {
				return "", false, domainerrors.ErrTransactionOwnershipViolation.WrapMessage("failed to collect")
			}

			switch current.Status {
			case entity.TransactionStatusCollected:
				return "", false, domainerrors.ErrAlreadyCollected.WrapMessage("failed to collect")
			case entity.TransactionStatusCancelled:
				return "", false, domainerrors.ErrAlreadyCancelled.WrapMessage("failed to collect")
			}

			return entity.TransactionStatusCollected, false, nil
		})
}

// Cancel cancels a transaction on behalf of its beneficiary. The offer becomes
// available again when the cancelled transaction was the reserved one.
func (srv *reservationService) Cancel(ctx context.Context, transactionID, requesterID uuid.UUID) (*entity.Transaction, error) {
	return srv.applyTransition(ctx, operationCancel, service.TransactionEventCancelled, transactionID,
		func(current *entity.Transaction) (entity.TransactionStatus, bool, error) {
			if current.BeneficiaryID != requesterID {
				return "", false, domainerrors.ErrTransactionOwnershipViolation.WrapMessage("failed to cancel")
			}

			switch current.Status {
			case entity.TransactionStatusCollected:
				return "", false, domainerrors.ErrAlreadyCollected.WrapMessage("failed to cancel")
			case entity.TransactionStatusCancelled:
				return "", false, domainerrors.ErrAlreadyCancelled.WrapMessage("failed to cancel")
			}

			return entity.TransactionStatusCancelled, current.Status == entity.TransactionStatusReserved, nil
		})
}

// AdminForceCancel cancels a reserved or collected transaction. A collected offer stays unavailable.
func (srv *reservationService) AdminForceCancel(ctx context.Context, transactionID uuid.UUID) (*entity.Transaction, error) {
	return srv.applyTransition(ctx, operationForceCancel, service.TransactionEventForceCancelled, transactionID,
		func(current *entity.Transaction) (entity.TransactionStatus, bool, error) {
			if current.Status == entity.TransactionStatusCancelled {
				return "", false, domainerrors.ErrAlreadyCancelled.WrapMessage("failed to force cancel")
			}

			return entity.TransactionStatusCancelled, current.Status == entity.TransactionStatusReserved, nil
		})
}

// transitionDecision inspects the locked transaction and returns its next status and
// whether the offer must be made available again.
type transitionDecision func(current *entity.Transaction) (next entity.TransactionStatus, releaseOffer bool, err error)

// applyTransition locks the offer, then the transaction, and applies the decision atomically.
func (srv *reservationService) applyTransition(
	ctx context.Context,
	operation string,
	eventType string,
	transactionID uuid.UUID,
	decide transitionDecision,
) (*entity.Transaction, error) {
	var result *entity.Transaction
	var offer *entity.Offer
	var previous entity.TransactionStatus

	err := srv.runTransition(ctx, operation, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()
		txRepo := repoFactory.TransactionRepo()

		// Unlocked read to learn which offer to lock first.
		current, err := txRepo.FindByID(ctx, transactionID)
		if err != nil {
			return mapTransactionLookupError(err)
		}

		locked, err := offerRepo.FindByIDForUpdate(ctx, current.OfferID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return domainerrors.ErrTransactionNotFound.WrapMessage("offer of transaction no longer exists")
			}

			return errors.Wrap(err, "failed to lock offer")
		}

		current, err = txRepo.FindByIDForUpdate(ctx, transactionID)
		if err != nil {
			return mapTransactionLookupError(err)
		}

		next, releaseOffer, err := decide(current)
		if err != nil {
			return err
		}

		if err := txRepo.UpdateStatus(ctx, current.ID, next); err != nil {
			return errors.Wrap(err, "failed to update transaction status")
		}

		if releaseOffer {
			if err := offerRepo.SetAvailability(ctx, locked.ID, true); err != nil {
				return errors.Wrap(err, "failed to release offer")
			}
			locked.Available = true
		}

		previous = current.Status
		current.Status = next
		current.UpdatedAt = time.Now().UTC()
		if next == entity.TransactionStatusCollected {
			collectedAt := current.UpdatedAt
			current.CollectedAt = &collectedAt
		}
		result = current
		offer = locked

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Transaction transition rejected",
			slog.String("operation", operation),
			slog.String("transactionID", transactionID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Transaction transitioned",
		slog.String("operation", operation),
		slog.String("transactionID", transactionID.String()),
		slog.String("from", string(previous)),
		slog.String("to", string(result.Status)),
	)
	srv.publish(ctx, eventType, result, offer, previous)

	return result, nil
}

func mapTransactionLookupError(err error) error {
	if errors.Is(err, repository.ErrTransactionNotFound) {
		return domainerrors.ErrTransactionNotFound.WrapMessage("failed to load transaction")
	}

	return errors.Wrap(err, "failed to load transaction")
}

// runTransition executes fn in one database transaction, retrying the whole unit of work
// with exponential backoff while the store reports serialization conflicts.
func (srv *reservationService) runTransition(ctx context.Context, operation string, fn func(repository.RepositoryFactory) error) error {
	start := time.Now()

	expBackoff := backoff.NewExponentialBackOff()
	if srv.retryBaseDelay > 0 {
		expBackoff.InitialInterval = srv.retryBaseDelay
	}
	if srv.retryMaxDelay > 0 {
		expBackoff.MaxInterval = srv.retryMaxDelay
	}
	expBackoff.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(srv.maxAttempts-1)), ctx)

	err := backoff.RetryNotify(func() error {
		err := srv.txManager.Execute(ctx, fn)
		if err == nil || errors.Is(err, repository.ErrSerializationConflict) {
			return err
		}

		return backoff.Permanent(err)
	}, policy, func(err error, wait time.Duration) {
		if srv.metrics != nil {
			srv.metrics.IncRetry(operation)
		}
		srv.log(ctx).Debug("Retrying transition after storage conflict",
			slog.String("operation", operation),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
	})

	if errors.Is(err, repository.ErrSerializationConflict) {
		srv.log(ctx).Error("Transition retries exhausted",
			slog.String("operation", operation),
			slog.Int("maxAttempts", srv.maxAttempts),
			slog.Any("error", err),
		)
		err = domainerrors.ErrReservationConflict.WrapMessage(err.Error())
	}

	if srv.metrics != nil {
		srv.metrics.ObserveOperation(operation, outcomeOf(err), time.Since(start))
	}

	return err
}

func outcomeOf(err error) string {
	if err == nil {
		return service.OutcomeSuccess
	}

	if errors.Is(err, domainerrors.ErrReservationConflict) {
		return service.OutcomeConflict
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return service.OutcomeRejected
	}

	return service.OutcomeError
}

// publish emits the committed transition. Failures are logged and never undo the transition.
func (srv *reservationService) publish(
	ctx context.Context,
	eventType string,
	tx *entity.Transaction,
	offer *entity.Offer,
	previous entity.TransactionStatus,
) {
	if srv.eventPublisher == nil {
		return
	}

	event := &service.TransactionEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Type:           eventType,
		TransactionID:  tx.ID.String(),
		OfferID:        tx.OfferID.String(),
		BeneficiaryID:  tx.BeneficiaryID.String(),
		CreatorID:      offer.CreatorID.String(),
		PreviousStatus: string(previous),
		Status:         string(tx.Status),
		OfferAvailable: offer.Available,
		OccurredAt:     time.Now().UTC(),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := srv.eventPublisher.PublishTransactionEvent(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish transaction event",
			slog.String("eventType", eventType),
			slog.String("transactionID", event.TransactionID),
			slog.Any("error", err),
		)
	}
}

// GetTransaction returns a transaction visible to its beneficiary, the offer creator or an admin.
func (srv *reservationService) GetTransaction(ctx context.Context, transactionID uuid.UUID, actor entity.Identity) (*entity.Transaction, error) {
	tx, err := srv.txRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, mapTransactionLookupError(err)
	}

	if entity.CanManage(tx, actor) {
		return tx, nil
	}

	offer, err := srv.offerRepo.FindByID(ctx, tx.OfferID)
	if err != nil && !errors.Is(err, repository.ErrOfferNotFound) {
		return nil, errors.Wrap(err, "failed to load offer of transaction")
	}
	if offer != nil && entity.CanManage(offer, actor) {
		return tx, nil
	}

	return nil, domainerrors.ErrForbidden.WrapMessage("transaction is not visible to caller")
}

// ListMine returns the transactions of a beneficiary, newest first.
func (srv *reservationService) ListMine(ctx context.Context, beneficiaryID uuid.UUID) ([]*entity.Transaction, error) {
	txs, err := srv.txRepo.ListByBeneficiary(ctx, beneficiaryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return txs, nil
}

// History returns the transactions of a user, visible to the user themself or an admin.
func (srv *reservationService) History(ctx context.Context, userID uuid.UUID, actor entity.Identity) ([]*entity.Transaction, error) {
	if !entity.CanManage(&entity.User{ID: userID}, actor) {
		return nil, domainerrors.ErrForbidden.WrapMessage("history is not visible to caller")
	}

	return srv.ListMine(ctx, userID)
}

// PickupQR renders the pickup QR code of a reserved transaction owned by the requester.
func (srv *reservationService) PickupQR(ctx context.Context, transactionID, requesterID uuid.UUID) ([]byte, error) {
	tx, err := srv.txRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, mapTransactionLookupError(err)
	}

	if tx.BeneficiaryID != requesterID {
		return nil, domainerrors.ErrTransactionOwnershipViolation.WrapMessage("failed to render pickup code")
	}

	switch tx.Status {
	case entity.TransactionStatusCollected:
		return nil, domainerrors.ErrAlreadyCollected.WrapMessage("failed to render pickup code")
	case entity.TransactionStatusCancelled:
		return nil, domainerrors.ErrAlreadyCancelled.WrapMessage("failed to render pickup code")
	}

	png, err := srv.qrCodeService.GeneratePickupQR(tx.ID, tx.OfferID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate pickup QR code", slog.String("transactionID", tx.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

// CollectByQR collects the transaction identified by a scanned pickup payload.
func (srv *reservationService) CollectByQR(ctx context.Context, qrData string, requesterID uuid.UUID) (*entity.Transaction, error) {
	transactionID, err := srv.qrCodeService.ParsePickupQR(qrData)
	if err != nil {
		srv.log(ctx).Warn("Invalid pickup QR code", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	return srv.Collect(ctx, transactionID, requesterID)
}
