package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pantry/config"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"
	"pantry/internal/errors"
	"pantry/internal/infra/persistence/postgres"
	"pantry/internal/infra/persistence/testdb"
	"pantry/internal/infra/qrcode"
	mockRepo "pantry/internal/mocks/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4, AccessTokenTTL: time.Minute},
		Reservation: &config.ReservationConfig{
			MaxAttempts:    3,
			RetryBaseDelay: time.Millisecond,
			RetryMaxDelay:  2 * time.Millisecond,
		},
		Pagination: &config.PaginationConfig{DefaultSize: 50, MaxSize: 1000},
	}
}

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.TransactionEvent
}

func (p *recordingPublisher) PublishTransactionEvent(_ context.Context, event *service.TransactionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}

	return types
}

// countingMetrics counts engine outcomes per operation.
type countingMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
	retries  map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{outcomes: map[string]int{}, retries: map[string]int{}}
}

func (m *countingMetrics) ObserveOperation(operation, outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[operation+"/"+outcome]++
}

func (m *countingMetrics) IncRetry(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.retries[operation]++
}

func (m *countingMetrics) outcome(operation, outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.outcomes[operation+"/"+outcome]
}

func asAppError(err error) (domainerrors.AppError, bool) {
	return errors.AsType[domainerrors.AppError](err)
}

// engineHarness wires the reservation engine to an in-memory catalog store.
type engineHarness struct {
	db        *gorm.DB
	engine    usecase.ReservationUsecase
	offers    repository.OfferRepository
	txs       repository.TransactionRepository
	publisher *recordingPublisher
	metrics   *countingMetrics
}

func newEngineHarness(t *testing.T) *engineHarness {
	t.Helper()

	db := testdb.Open(t)
	h := &engineHarness{
		db:        db,
		offers:    postgres.NewOfferRepository(db),
		txs:       postgres.NewTransactionRepository(db),
		publisher: &recordingPublisher{},
		metrics:   newCountingMetrics(),
	}
	h.engine = NewReservationService(ReservationServiceParams{
		TxManager:      postgres.NewTransactionManager(db),
		OfferRepo:      h.offers,
		TxRepo:         h.txs,
		QRCodeService:  qrcode.NewQRCodeService(128, "M"),
		EventPublisher: h.publisher,
		Metrics:        h.metrics,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return h
}

func (h *engineHarness) user(t *testing.T, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:    uuid.NewString() + "@example.com",
		Name:     "Test " + role.String(),
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, postgres.NewUserRepository(h.db).Create(context.Background(), user))

	return user
}

func (h *engineHarness) offer(t *testing.T, creatorID uuid.UUID) *entity.Offer {
	t.Helper()

	offer := &entity.Offer{
		Title:     "Soup",
		Kind:      entity.OfferKindMeals,
		Quantity:  3,
		Available: true,
		CreatorID: creatorID,
	}
	require.NoError(t, h.offers.Create(context.Background(), offer))

	return offer
}

func (h *engineHarness) available(t *testing.T, offerID uuid.UUID) bool {
	t.Helper()

	offer, err := h.offers.FindByID(context.Background(), offerID)
	require.NoError(t, err)

	return offer.Available
}

// requireAvailabilityMatchesClaims checks that an offer is available exactly when
// it has no reserved or collected transaction.
func (h *engineHarness) requireAvailabilityMatchesClaims(t *testing.T, offerID uuid.UUID) {
	t.Helper()

	_, err := h.txs.FindActiveByOffer(context.Background(), offerID)
	hasActive := err == nil
	if !hasActive {
		require.ErrorIs(t, err, repository.ErrTransactionNotFound)
	}

	require.Equal(t, !hasActive, h.available(t, offerID))
}

// mockTxManager returns a transaction manager mock that runs every unit of work
// against the given factory.
func mockTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}
