package impl

import (
	"context"
	"log/slog"
	"strings"

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

const tokenTypeBearer = "bearer"

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with email credentials. Admin accounts cannot be self-registered.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)

	switch {
	case !input.Role.IsValid():
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be one of beneficiary, donor, partner")
	case input.Role == entity.RoleAdmin:
		return nil, domainerrors.ErrRoleNotAllowed.WrapMessage("admin accounts cannot be self-registered")
	case name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	case email == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet requirements")
	}

	// bcrypt is CPU-bound, hash before opening the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:    email,
		Name:     name,
		Role:     input.Role,
		IsActive: true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		if _, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email); err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("failed to register")
		} else if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("failed to register")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		return errors.Wrap(authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}), "failed to create authentication during registration")
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("userID", newUser.ID.String()), slog.String("role", newUser.Role.String()))

	return newUser, nil
}

// Login verifies email credentials and issues an access token.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	authRecord, err := srv.loadLoginAuth(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	user, err := srv.userRepo.FindByIDFromPrimary(ctx, authRecord.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load login user from primary")
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Login rejected for deactivated account", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrAccountDisabled.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
		User:        user,
	}, nil
}

func (srv *identityService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Load authentication from primary in a short transaction to avoid stale reads on replicas.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		authRecord, findErr = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAuthNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
			}

			return errors.Wrap(findErr, "failed to find authentication")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return authRecord, nil
}

// Authenticate validates an access token and resolves the caller. The current role of the
// account is used, so role changes apply without reissuing tokens.
func (srv *identityService) Authenticate(ctx context.Context, token string) (entity.Identity, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return entity.Identity{}, domainerrors.ErrUnauthorized.WrapMessage(err.Error())
	}

	userID := claims.UserID
	if userID == uuid.Nil {
		return entity.Identity{}, domainerrors.ErrUnauthorized.WrapMessage("token has no subject")
	}

	user, err := srv.userRepo.FindByIDFromPrimary(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.Identity{}, domainerrors.ErrUnauthorized.WrapMessage("token subject no longer exists")
		}

		return entity.Identity{}, errors.Wrap(err, "failed to load token subject")
	}

	if !user.IsActive {
		return entity.Identity{}, domainerrors.ErrAccountDisabled.WrapMessage("authentication failed")
	}

	return user.Identity(), nil
}

// Me returns the account of the caller.
func (srv *identityService) Me(ctx context.Context, identity entity.Identity) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to load account")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return user, nil
}
