package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pantry/config"
	"pantry/internal/delivery/api/middleware"
	"pantry/internal/delivery/api/router"
	"pantry/internal/delivery/api/router/handler"
	"pantry/internal/domain/entity"
	"pantry/internal/infra/auth"
	"pantry/internal/infra/metrics"
	"pantry/internal/infra/persistence/postgres"
	"pantry/internal/infra/persistence/testdb"
	"pantry/internal/infra/pubsub"
	"pantry/internal/infra/qrcode"
	"pantry/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type apiHarness struct {
	t    *testing.T
	db   *gorm.DB
	echo *echo.Echo
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		SecretKey:        config.SecretKeyConfig{Access: "test-access-secret"},
		Auth:             &config.AuthConfig{BcryptCost: 4, AccessTokenTTL: time.Minute},
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 6, MaxLength: 72},
		Reservation: &config.ReservationConfig{
			MaxAttempts:    3,
			RetryBaseDelay: time.Millisecond,
			RetryMaxDelay:  2 * time.Millisecond,
		},
		Pagination: &config.PaginationConfig{DefaultSize: 50, MaxSize: 1000},
		Metrics:    &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.Env.ServiceName = "pantry"
	cfg.Env.Env = "test"
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return cfg
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()

	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := testdb.Open(t)
	m := metrics.New()

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	txManager := postgres.NewTransactionManager(db)
	userRepo := postgres.NewUserRepository(db)
	offerRepo := postgres.NewOfferRepository(db)
	txRepo := postgres.NewTransactionRepository(db)

	identityUC := impl.NewIdentityService(impl.IdentityServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokens,
		Logger:       logger,
	})
	offerUC := impl.NewOfferService(impl.OfferServiceParams{
		TxManager: txManager,
		OfferRepo: offerRepo,
		Config:    cfg,
		Logger:    logger,
	})
	reservationUC := impl.NewReservationService(impl.ReservationServiceParams{
		TxManager:      txManager,
		OfferRepo:      offerRepo,
		TxRepo:         txRepo,
		QRCodeService:  qrcode.NewQRCodeService(128, "M"),
		EventPublisher: pubsub.NewNoopPublisher(logger),
		Metrics:        m,
		Config:         cfg,
		Logger:         logger,
	})
	adminUC := impl.NewAdminService(impl.AdminServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		OfferRepo: offerRepo,
		TxRepo:    txRepo,
		Config:    cfg,
		Logger:    logger,
	})

	routerParams := router.RouterParams{
		AuthHandler:        handler.NewAuthHandler(handler.AuthHandlerParams{IdentityUC: identityUC, Logger: logger}),
		OfferHandler:       handler.NewOfferHandler(handler.OfferHandlerParams{OfferUC: offerUC, Logger: logger}),
		TransactionHandler: handler.NewTransactionHandler(handler.TransactionHandlerParams{ReservationUC: reservationUC, Logger: logger}),
		AdminHandler:       handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: adminUC, Logger: logger}),
		HealthHandler:      handler.NewHealthHandler(handler.HealthHandlerParams{DB: db, Config: cfg}),
		AuthMiddleware:     middleware.NewAuthMiddleware(identityUC),
		Metrics:            m,
		Config:             cfg,
	}

	return &apiHarness{t: t, db: db, echo: newEcho(cfg, logger, routerParams)}
}

func (h *apiHarness) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	h.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get(echo.HeaderContentType) != "image/png" && rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}

	return rec, env
}

func (h *apiHarness) decode(env envelope, dest any) {
	h.t.Helper()
	require.NoError(h.t, json.Unmarshal(env.Data, dest))
}

// signUp registers an account and returns its id and access token.
func (h *apiHarness) signUp(name, role string) (string, string) {
	h.t.Helper()

	email := name + "@example.com"
	rec, env := h.do(http.MethodPost, "/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "secret123", "role": role,
	})
	require.Equal(h.t, http.StatusCreated, rec.Code, rec.Body.String())
	var user handler.UserResponse
	h.decode(env, &user)

	rec, env = h.do(http.MethodPost, "/auth/login", "", map[string]string{"email": email, "password": "secret123"})
	require.Equal(h.t, http.StatusOK, rec.Code, rec.Body.String())
	var login handler.LoginResponse
	h.decode(env, &login)
	require.Equal(h.t, "bearer", login.TokenType)

	return user.ID.String(), login.AccessToken
}

func (h *apiHarness) promote(userID string, role entity.Role) {
	h.t.Helper()

	repo := postgres.NewUserRepository(h.db)
	user, err := repo.FindByID(context.Background(), mustUUID(h.t, userID))
	require.NoError(h.t, err)
	user.Role = role
	require.NoError(h.t, repo.Update(context.Background(), user))
}

func TestServer_HealthAndStatus(t *testing.T) {
	h := newAPIHarness(t)

	rec, env := h.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, env.Meta.RequestID)

	rec, env = h.do(http.MethodGet, "/status", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status handler.StatusResponse
	h.decode(env, &status)
	assert.Equal(t, "pantry", status.Service)
	assert.Equal(t, "up", status.Database)
}

func TestServer_AuthenticationGate(t *testing.T) {
	h := newAPIHarness(t)

	rec, env := h.do(http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	rec, env = h.do(http.MethodGet, "/api/v1/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	rec, env = h.do(http.MethodPost, "/auth/register", "", map[string]string{
		"name": "root", "email": "root@example.com", "password": "secret123", "role": "admin",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROLE_NOT_ALLOWED", env.Error.Code)

	rec, env = h.do(http.MethodPost, "/auth/login", "", map[string]string{"email": "nobody@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)

	userID, token := h.signUp("ada", "beneficiary")
	rec, env = h.do(http.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me handler.UserResponse
	h.decode(env, &me)
	assert.Equal(t, userID, me.ID.String())
	assert.Equal(t, entity.RoleBeneficiary, me.Role)
}

func TestServer_ReservationFlow(t *testing.T) {
	h := newAPIHarness(t)

	_, donorToken := h.signUp("donor", "donor")
	_, firstToken := h.signUp("first", "beneficiary")
	_, secondToken := h.signUp("second", "beneficiary")

	rec, env := h.do(http.MethodPost, "/api/v1/offers", firstToken, map[string]any{"title": "Bread", "kind": "goods", "quantity": 1})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	rec, env = h.do(http.MethodPost, "/api/v1/offers", donorToken, map[string]any{"title": "Bread", "kind": "pastry", "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{"kind": "oneof=goods meals credits"}, env.Error.Details)

	rec, env = h.do(http.MethodPost, "/api/v1/offers", donorToken, map[string]any{"title": "Bread", "kind": "goods", "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var offer handler.OfferResponse
	h.decode(env, &offer)
	assert.True(t, offer.Available)

	rec, env = h.do(http.MethodPost, "/api/v1/transactions/reserve", donorToken, map[string]string{"offer_id": offer.ID.String()})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = h.do(http.MethodPost, "/api/v1/transactions/reserve", firstToken, map[string]string{"offer_id": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = h.do(http.MethodPost, "/api/v1/transactions/reserve", firstToken, map[string]string{"offer_id": offer.ID.String()})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var tx handler.TransactionResponse
	h.decode(env, &tx)
	assert.Equal(t, entity.TransactionStatusReserved, tx.Status)

	rec, env = h.do(http.MethodPost, "/api/v1/transactions/reserve", secondToken, map[string]string{"offer_id": offer.ID.String()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "OFFER_ALREADY_CLAIMED", env.Error.Code)

	rec, env = h.do(http.MethodPost, "/api/v1/transactions/reserve", firstToken, map[string]string{"offer_id": offer.ID.String()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DUPLICATE_CLAIM", env.Error.Code)

	rec, _ = h.do(http.MethodGet, "/api/v1/transactions/"+tx.ID.String()+"/qr", firstToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.NotZero(t, rec.Body.Len())

	rec, env = h.do(http.MethodPut, "/api/v1/transactions/"+tx.ID.String()+"/collect", secondToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TRANSACTION_OWNERSHIP_VIOLATION", env.Error.Code)

	rec, env = h.do(http.MethodPut, "/api/v1/transactions/"+tx.ID.String()+"/collect", firstToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	h.decode(env, &tx)
	assert.Equal(t, entity.TransactionStatusCollected, tx.Status)

	rec, env = h.do(http.MethodPut, "/api/v1/transactions/"+tx.ID.String()+"/cancel", firstToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ALREADY_COLLECTED", env.Error.Code)

	rec, env = h.do(http.MethodGet, "/api/v1/offers/"+offer.ID.String(), secondToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	h.decode(env, &offer)
	assert.False(t, offer.Available)

	rec, env = h.do(http.MethodGet, "/api/v1/transactions/mine", firstToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []handler.TransactionResponse
	h.decode(env, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, tx.ID, mine[0].ID)

	rec, _ = h.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pantry_reservation_operations_total{operation="reserve",outcome="success"} 1`)
	assert.Contains(t, rec.Body.String(), `pantry_http_requests_total`)
}

func TestServer_AdminRoutes(t *testing.T) {
	h := newAPIHarness(t)

	adminID, adminToken := h.signUp("admin", "donor")
	h.promote(adminID, entity.RoleAdmin)
	userID, userToken := h.signUp("ben", "beneficiary")

	rec, _ := h.do(http.MethodGet, "/api/v1/admin/dashboard", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env := h.do(http.MethodGet, "/api/v1/admin/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var stats entity.DashboardStats
	h.decode(env, &stats)
	assert.Equal(t, int64(2), stats.TotalUsers)

	rec, env = h.do(http.MethodGet, "/api/v1/admin/users?role=beneficiary&size=10", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users entity.Page[handler.UserResponse]
	h.decode(env, &users)
	assert.Equal(t, int64(1), users.Total)
	assert.Equal(t, 10, users.Size)

	rec, env = h.do(http.MethodDelete, "/api/v1/admin/users/"+adminID, adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CANNOT_MODIFY_SELF", env.Error.Code)

	rec, _ = h.do(http.MethodDelete, "/api/v1/admin/users/"+userID, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = h.do(http.MethodGet, "/api/v1/me", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ACCOUNT_DISABLED", env.Error.Code)

	rec, env = h.do(http.MethodGet, "/api/v1/admin/transactions?status=lost", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}
