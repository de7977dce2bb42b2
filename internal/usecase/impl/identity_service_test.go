package impl

import (
	"context"
	"testing"
	"time"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	domainservice "pantry/internal/domain/service"
	mockRepo "pantry/internal/mocks/repository"
	mockService "pantry/internal/mocks/service"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityMocks struct {
	factory  *mockRepo.MockRepositoryFactory
	userRepo *mockRepo.MockUserRepository
	authRepo *mockRepo.MockAuthRepository
	hasher   *mockService.MockPasswordHasher
	tokens   *mockService.MockTokenService
}

func newIdentityMocks(t *testing.T) (*identityMocks, usecase.IdentityUsecase) {
	m := &identityMocks{
		factory:  mockRepo.NewMockRepositoryFactory(t),
		userRepo: mockRepo.NewMockUserRepository(t),
		authRepo: mockRepo.NewMockAuthRepository(t),
		hasher:   mockService.NewMockPasswordHasher(t),
		tokens:   mockService.NewMockTokenService(t),
	}
	m.factory.EXPECT().UserRepo().Return(m.userRepo).Maybe()
	m.factory.EXPECT().AuthRepo().Return(m.authRepo).Maybe()

	srv := NewIdentityService(IdentityServiceParams{
		TxManager:    mockTxManager(t, m.factory),
		UserRepo:     m.userRepo,
		Hasher:       m.hasher,
		TokenService: m.tokens,
		Logger:       newDiscardLogger(),
	})

	return m, srv
}

func TestIdentityService_Register_Success(t *testing.T) {
	m, srv := newIdentityMocks(t)
	ctx := context.Background()

	m.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	m.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	m.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@example.com").Return(nil, repository.ErrAuthNotFound)
	m.userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "ana@example.com" && u.Role == entity.RoleBeneficiary && u.IsActive
	})).Run(func(_ context.Context, u *entity.User) { u.ID = uuid.New() }).Return(nil)
	m.authRepo.EXPECT().CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
		return a.PasswordHash == "hashed" && a.ProviderUserID == "ana@example.com" && a.UserID != uuid.Nil
	})).Return(nil)

	user, err := srv.Register(ctx, &usecase.RegisterInput{
		Name:     "Ana",
		Email:    " Ana@Example.com ",
		Password: "secret1",
		Role:     entity.RoleBeneficiary,
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestIdentityService_Register_Rejections(t *testing.T) {
	t.Run("admin role", func(t *testing.T) {
		_, srv := newIdentityMocks(t)
		_, err := srv.Register(context.Background(), &usecase.RegisterInput{Name: "A", Email: "a@b.c", Password: "secret1", Role: entity.RoleAdmin})
		assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, srv := newIdentityMocks(t)
		_, err := srv.Register(context.Background(), &usecase.RegisterInput{Name: "A", Email: "a@b.c", Password: "secret1", Role: "merchant"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("weak password", func(t *testing.T) {
		m, srv := newIdentityMocks(t)
		m.hasher.EXPECT().ValidatePasswordStrength("abc").Return(domainerrors.ErrPasswordStrength)

		_, err := srv.Register(context.Background(), &usecase.RegisterInput{Name: "A", Email: "a@b.c", Password: "abc", Role: entity.RoleDonor})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	})

	t.Run("email taken", func(t *testing.T) {
		m, srv := newIdentityMocks(t)
		ctx := context.Background()
		m.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
		m.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		m.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "a@b.c").Return(&entity.Authentication{}, nil)

		_, err := srv.Register(ctx, &usecase.RegisterInput{Name: "A", Email: "a@b.c", Password: "secret1", Role: entity.RoleDonor})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestIdentityService_Login(t *testing.T) {
	userID := uuid.New()
	auth := &entity.Authentication{UserID: userID, PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		m, srv := newIdentityMocks(t)
		ctx := context.Background()
		m.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "a@b.c").Return(auth, nil)
		m.hasher.EXPECT().Check("secret1", "hashed").Return(true)
		m.userRepo.EXPECT().FindByIDFromPrimary(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleDonor, IsActive: true}, nil)
		m.tokens.EXPECT().GenerateAccessToken(userID, []string{"donor"}).Return("token", nil)
		m.tokens.EXPECT().GetAccessTokenDuration().Return(30 * time.Minute)

		out, err := srv.Login(ctx, &usecase.LoginInput{Email: "a@b.c", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "token", out.AccessToken)
		assert.Equal(t, "bearer", out.TokenType)
		assert.Equal(t, int64(1800), out.ExpiresIn)
	})

	t.Run("unknown email", func(t *testing.T) {
		m, srv := newIdentityMocks(t)
		ctx := context.Background()
		m.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "x@b.c").Return(nil, repository.ErrAuthNotFound)

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "x@b.c", Password: "secret1"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		m, srv := newIdentityMocks(t)
		ctx := context.Background()
		m.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "a@b.c").Return(auth, nil)
		m.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "a@b.c", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("deactivated", func(t *testing.T) {
		m, srv := newIdentityMocks(t)
		ctx := context.Background()
		m.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "a@b.c").Return(auth, nil)
		m.hasher.EXPECT().Check("secret1", "hashed").Return(true)
		m.userRepo.EXPECT().FindByIDFromPrimary(ctx, userID).Return(&entity.User{ID: userID, IsActive: false}, nil)

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "a@b.c", Password: "secret1"})
		assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
	})
}

func TestIdentityService_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("uses current role of account", func(t *testing.T) {
		m, srv := newIdentityMocks(t)
		ctx := context.Background()
		m.tokens.EXPECT().ValidateToken("token").Return(&domainservice.Claims{UserID: userID, Roles: []string{"beneficiary"}}, nil)
		m.userRepo.EXPECT().FindByIDFromPrimary(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleAdmin, IsActive: true}, nil)

		identity, err := srv.Authenticate(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, entity.Identity{UserID: userID, Role: entity.RoleAdmin}, identity)
	})

	t.Run("invalid token", func(t *testing.T) {
		m, srv := newIdentityMocks(t)
		m.tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))

		_, err := srv.Authenticate(context.Background(), "bad")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("missing user", func(t *testing.T) {
		m, srv := newIdentityMocks(t)
		ctx := context.Background()
		m.tokens.EXPECT().ValidateToken("token").Return(&domainservice.Claims{UserID: userID}, nil)
		m.userRepo.EXPECT().FindByIDFromPrimary(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := srv.Authenticate(ctx, "token")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("deactivated user", func(t *testing.T) {
		m, srv := newIdentityMocks(t)
		ctx := context.Background()
		m.tokens.EXPECT().ValidateToken("token").Return(&domainservice.Claims{UserID: userID}, nil)
		m.userRepo.EXPECT().FindByIDFromPrimary(ctx, userID).Return(&entity.User{ID: userID, IsActive: false}, nil)

		_, err := srv.Authenticate(ctx, "token")
		assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
	})
}
