package impl

import (
	"context"
	"log/slog"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"
	"pantry/internal/errors"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// eventAuditService implements the EventAuditUsecase interface.
type eventAuditService struct {
	txManager repository.TransactionManager
	metrics   service.EventAuditMetrics
	logger    *slog.Logger
}

// EventAuditServiceParams holds dependencies for EventAuditService, injected by Fx.
type EventAuditServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Metrics   service.EventAuditMetrics `optional:"true"`
	Logger    *slog.Logger
}

// NewEventAuditService is the constructor for eventAuditService.
func NewEventAuditService(params EventAuditServiceParams) usecase.EventAuditUsecase {
	return &eventAuditService{
		txManager: params.TxManager,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *eventAuditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AuditTransactionEvent reads the offer of the event together with its active transaction
// under the offer lock, so in-flight transitions cannot produce a false verdict.
func (srv *eventAuditService) AuditTransactionEvent(ctx context.Context, event *service.TransactionEvent) (usecase.AuditResult, error) {
	offerID, err := uuid.Parse(event.OfferID)
	if err != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("event offer_id is not a UUID")
	}

	var (
		result         usecase.AuditResult
		available      bool
		hasActive      bool
		activeTxStatus string
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offer, err := repoFactory.OfferRepo().FindByIDForUpdate(ctx, offerID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				result = usecase.AuditSkipped

				return nil
			}

			return errors.Wrap(err, "failed to load audited offer")
		}
		available = offer.Available

		txRepo := repoFactory.TransactionRepo()

		active, err := txRepo.FindActiveByOffer(ctx, offerID)
		switch {
		case err == nil:
			hasActive = true
			activeTxStatus = string(active.Status)
		case !errors.Is(err, repository.ErrTransactionNotFound):
			return errors.Wrap(err, "failed to load active transaction of audited offer")
		}

		result = usecase.AuditConsistent
		if available != hasActive {
			return nil
		}

		// An unavailable offer without an active claim is legal once a claim on it was
		// collected and then force cancelled.
		if !available {
			consumed, err := txRepo.Count(ctx, entity.TransactionFilter{OfferID: &offerID, Collected: true})
			if err != nil {
				return errors.Wrap(err, "failed to count collected transactions of audited offer")
			}
			if consumed > 0 {
				return nil
			}
		}

		result = usecase.AuditInconsistent

		return nil
	})
	if err != nil {
		return "", err
	}

	if srv.metrics != nil {
		srv.metrics.ObserveAudit(event.Type, string(result))
	}

	logger := srv.log(ctx).With(
		slog.String("eventType", event.Type),
		slog.String("transactionID", event.TransactionID),
		slog.String("offerID", event.OfferID),
	)

	switch result {
	case usecase.AuditInconsistent:
		logger.Error("Offer availability disagrees with its transactions",
			slog.Bool("available", available),
			slog.String("activeStatus", activeTxStatus),
		)
	case usecase.AuditSkipped:
		logger.Info("Audited offer no longer exists")
	default:
		logger.Debug("Transaction event audited")
	}

	return result, nil
}
