package impl

import (
	"context"
	"log/slog"
	"strings"

	"pantry/config"
	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/errors"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	offerRepo       repository.OfferRepository
	txRepo          repository.TransactionRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	OfferRepo repository.OfferRepository
	TxRepo    repository.TransactionRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	srv := &adminService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		offerRepo: params.OfferRepo,
		txRepo:    params.TxRepo,
		logger:    params.Logger,
	}

	if params.Config != nil && params.Config.Pagination != nil {
		srv.defaultPageSize = params.Config.Pagination.DefaultSize
		srv.maxPageSize = params.Config.Pagination.MaxSize
	}

	return srv
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) normalize(page entity.PageRequest) entity.PageRequest {
	return page.Normalize(srv.defaultPageSize, srv.maxPageSize)
}

// ListUsers returns a page of accounts, newest first.
func (srv *adminService) ListUsers(ctx context.Context, filter entity.UserFilter, page entity.PageRequest) (*entity.Page[*entity.User], error) {
	page = srv.normalize(page)

	users, total, err := srv.userRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	result := entity.NewPage(users, total, page)

	return &result, nil
}

// GetUserDetails returns an account with its offer and transaction counts.
func (srv *adminService) GetUserDetails(ctx context.Context, userID uuid.UUID) (*usecase.UserDetails, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	totalOffers, err := srv.offerRepo.Count(ctx, entity.OfferFilter{CreatorID: &userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count offers of user")
	}

	totalTransactions, err := srv.txRepo.Count(ctx, entity.TransactionFilter{BeneficiaryID: &userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count transactions of user")
	}

	activeTransactions, err := srv.txRepo.CountActiveByBeneficiary(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active transactions of user")
	}

	return &usecase.UserDetails{
		User: user,
		Stats: entity.UserStats{
			TotalOffers:        totalOffers,
			TotalTransactions:  totalTransactions,
			ActiveTransactions: activeTransactions,
		},
	}, nil
}

func mapUserLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WrapMessage("failed to load user")
	}

	return errors.Wrap(err, "failed to load user")
}

// UpdateUser changes name, role or active flag of an account. Admins cannot
// deactivate or demote themselves.
func (srv *adminService) UpdateUser(
	ctx context.Context,
	actor entity.Identity,
	userID uuid.UUID,
	input *usecase.UpdateUserInput,
) (*entity.User, error) {
	if userID == actor.UserID {
		if (input.IsActive != nil && !*input.IsActive) || (input.Role != nil && *input.Role != entity.RoleAdmin) {
			return nil, domainerrors.ErrCannotModifySelf.WrapMessage("failed to update user")
		}
	}
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be one of beneficiary, donor, partner, admin")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return mapUserLookupError(err)
		}

		if input.Name != nil {
			user.Name = strings.TrimSpace(*input.Name)
		}
		if input.Role != nil {
			user.Role = *input.Role
		}
		if input.IsActive != nil {
			user.IsActive = *input.IsActive
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User update rejected", slog.String("userID", userID.String()), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User updated",
		slog.String("userID", userID.String()),
		slog.String("actorID", actor.UserID.String()),
		slog.String("role", updated.Role.String()),
		slog.Bool("isActive", updated.IsActive),
	)

	return updated, nil
}

// AnonymizeUser strips personal data from an account and deactivates it. The login
// identifier of its credentials is rewritten so the old email can be registered again.
func (srv *adminService) AnonymizeUser(ctx context.Context, actor entity.Identity, userID uuid.UUID) error {
	if userID == actor.UserID {
		return domainerrors.ErrCannotModifySelf.WrapMessage("failed to anonymize user")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return mapUserLookupError(err)
		}

		user.Anonymize()

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to anonymize user")
		}

		return errors.Wrap(repoFactory.AuthRepo().UpdateProviderUserID(ctx, userID, user.Email), "failed to release login identifier")
	})
	if err != nil {
		srv.log(ctx).Warn("User anonymization rejected", slog.String("userID", userID.String()), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("User anonymized", slog.String("userID", userID.String()), slog.String("actorID", actor.UserID.String()))

	return nil
}

// ListOffers returns a page of all offers, newest first.
func (srv *adminService) ListOffers(ctx context.Context, filter entity.OfferFilter, page entity.PageRequest) (*entity.Page[*entity.Offer], error) {
	page = srv.normalize(page)

	offers, total, err := srv.offerRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	result := entity.NewPage(offers, total, page)

	return &result, nil
}

// DeleteOffer removes any offer that has never been claimed.
func (srv *adminService) DeleteOffer(ctx context.Context, offerID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		if _, err := offerRepo.FindByIDForUpdate(ctx, offerID); err != nil {
			return mapOfferLookupError(err)
		}

		if err := offerRepo.Delete(ctx, offerID); err != nil {
			return mapOfferDeleteError(err)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Offer delete by admin rejected", slog.String("offerID", offerID.String()), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Offer deleted by admin", slog.String("offerID", offerID.String()))

	return nil
}

// ListTransactions returns a page of all transactions, newest first.
func (srv *adminService) ListTransactions(
	ctx context.Context,
	filter entity.TransactionFilter,
	page entity.PageRequest,
) (*entity.Page[*entity.Transaction], error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of reserved, collected, cancelled")
	}

	page = srv.normalize(page)

	txs, total, err := srv.txRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	result := entity.NewPage(txs, total, page)

	return &result, nil
}

// Dashboard aggregates marketplace counters. Counts come from replicas and may lag.
func (srv *adminService) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	active := true
	reserved := entity.TransactionStatusReserved
	stats := &entity.DashboardStats{}

	counters := []struct {
		target *int64
		count  func() (int64, error)
		name   string
	}{
		{&stats.TotalUsers, func() (int64, error) { return srv.userRepo.Count(ctx, entity.UserFilter{}) }, "users"},
		{&stats.ActiveUsers, func() (int64, error) { return srv.userRepo.Count(ctx, entity.UserFilter{IsActive: &active}) }, "active users"},
		{&stats.TotalOffers, func() (int64, error) { return srv.offerRepo.Count(ctx, entity.OfferFilter{}) }, "offers"},
		{&stats.AvailableOffers, func() (int64, error) { return srv.offerRepo.Count(ctx, entity.OfferFilter{Available: &active}) }, "available offers"},
		{&stats.TotalTransactions, func() (int64, error) { return srv.txRepo.Count(ctx, entity.TransactionFilter{}) }, "transactions"},
		{&stats.InProgressTransactions, func() (int64, error) {
			return srv.txRepo.Count(ctx, entity.TransactionFilter{Status: &reserved})
		}, "in-progress transactions"},
	}

	for _, counter := range counters {
		n, err := counter.count()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to count %s", counter.name)
		}
		*counter.target = n
	}

	return stats, nil
}
