package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"pantry/config"
	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/errors"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

const maxNearbyRadiusMeters = 50_000

// offerService implements the OfferUsecase interface.
type offerService struct {
	txManager       repository.TransactionManager
	offerRepo       repository.OfferRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OfferRepo repository.OfferRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	srv := &offerService{
		txManager: params.TxManager,
		offerRepo: params.OfferRepo,
		logger:    params.Logger,
	}

	if params.Config != nil && params.Config.Pagination != nil {
		srv.defaultPageSize = params.Config.Pagination.DefaultSize
		srv.maxPageSize = params.Config.Pagination.MaxSize
	}

	return srv
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOffer publishes a new, available offer owned by the actor.
func (srv *offerService) CreateOffer(ctx context.Context, actor entity.Identity, input *usecase.CreateOfferInput) (*entity.Offer, error) {
	if !actor.Role.CanPublishOffers() {
		return nil, domainerrors.ErrRoleNotAllowed.WrapMessage("only donors and partners can publish offers")
	}

	offer := &entity.Offer{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Kind:        input.Kind,
		Quantity:    input.Quantity,
		Location:    input.Location,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		ExpiresAt:   input.ExpiresAt,
		Available:   true,
		CreatorID:   actor.UserID,
	}

	if err := validateOffer(offer); err != nil {
		return nil, err
	}

	if err := srv.offerRepo.Create(ctx, offer); err != nil {
		srv.log(ctx).Error("Failed to create offer", slog.String("creatorID", actor.UserID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create offer")
	}

	srv.log(ctx).Info("Offer created", slog.String("offerID", offer.ID.String()), slog.String("kind", string(offer.Kind)))

	return offer, nil
}

func validateOffer(offer *entity.Offer) error {
	switch {
	case offer.Title == "":
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	case !offer.Kind.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("kind must be one of goods, meals, credits")
	case offer.Quantity <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	case (offer.Latitude == nil) != (offer.Longitude == nil):
		return domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be given together")
	}

	if offer.HasCoordinates() && !validCoordinates(*offer.Latitude, *offer.Longitude) {
		return domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	return nil
}

func validCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// GetOffer returns a single offer.
func (srv *offerService) GetOffer(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		return nil, mapOfferLookupError(err)
	}

	return offer, nil
}

func mapOfferDeleteError(err error) error {
	if errors.Is(err, repository.ErrOfferHasTransactions) {
		return domainerrors.ErrOfferHasTransactions.WrapMessage("failed to delete offer")
	}

	return errors.Wrap(err, "failed to delete offer")
}

func mapOfferLookupError(err error) error {
	if errors.Is(err, repository.ErrOfferNotFound) {
		return domainerrors.ErrOfferNotFound.WrapMessage("failed to load offer")
	}

	return errors.Wrap(err, "failed to load offer")
}

// ListAvailable returns a page of available offers, newest first. With a nearby query
// the page is ordered by distance and only offers inside the radius are returned.
func (srv *offerService) ListAvailable(ctx context.Context, input *usecase.ListOffersInput) (*entity.Page[*entity.Offer], error) {
	page := input.Page.Normalize(srv.defaultPageSize, srv.maxPageSize)
	available := true
	filter := entity.OfferFilter{Available: &available, Kind: input.Kind}

	if input.Near != nil {
		return srv.listNearby(ctx, filter, input.Near, page)
	}

	offers, total, err := srv.offerRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	result := entity.NewPage(offers, total, page)

	return &result, nil
}

type offerDistance struct {
	offer  *entity.Offer
	meters float64
}

func (srv *offerService) listNearby(
	ctx context.Context,
	filter entity.OfferFilter,
	near *usecase.NearbyQuery,
	page entity.PageRequest,
) (*entity.Page[*entity.Offer], error) {
	if !validCoordinates(near.Latitude, near.Longitude) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}
	if near.RadiusMeters <= 0 || near.RadiusMeters > maxNearbyRadiusMeters {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius_m must be between 1 and 50000")
	}

	center := orb.Point{near.Longitude, near.Latitude}
	bound := geo.NewBoundAroundPoint(center, near.RadiusMeters)
	filter.Within = &entity.BoundingBox{
		MinLat: bound.Min.Lat(),
		MaxLat: bound.Max.Lat(),
		MinLon: bound.Min.Lon(),
		MaxLon: bound.Max.Lon(),
	}

	candidates, err := srv.offerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list nearby offers")
	}

	matches := make([]offerDistance, 0, len(candidates))
	for _, offer := range candidates {
		if !offer.HasCoordinates() {
			continue
		}
		meters := geo.Distance(center, orb.Point{*offer.Longitude, *offer.Latitude})
		if meters <= near.RadiusMeters {
			matches = append(matches, offerDistance{offer: offer, meters: meters})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].meters < matches[j].meters
	})

	start := min(page.Offset(), len(matches))
	end := min(start+page.Size, len(matches))
	items := make([]*entity.Offer, 0, end-start)
	for _, match := range matches[start:end] {
		items = append(items, match.offer)
	}

	srv.log(ctx).Debug("Nearby offers listed",
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(matches)),
		slog.Float64("radiusMeters", near.RadiusMeters),
	)

	result := entity.NewPage(items, int64(len(matches)), page)

	return &result, nil
}

// UpdateOffer applies a patch to an offer managed by the actor. Availability cannot be patched.
func (srv *offerService) UpdateOffer(ctx context.Context, offerID uuid.UUID, patch *entity.OfferPatch, actor entity.Identity) (*entity.Offer, error) {
	var updated *entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		offer, err := offerRepo.FindByIDForUpdate(ctx, offerID)
		if err != nil {
			return mapOfferLookupError(err)
		}

		if !entity.CanManage(offer, actor) {
			return domainerrors.ErrForbidden.WrapMessage("offer is not managed by caller")
		}

		patch.Apply(offer)
		offer.Title = strings.TrimSpace(offer.Title)
		if err := validateOffer(offer); err != nil {
			return err
		}

		if err := offerRepo.Update(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to update offer")
		}
		updated = offer

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Offer update rejected", slog.String("offerID", offerID.String()), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteOffer removes an offer managed by the actor. Claimed offers keep their history and are refused.
func (srv *offerService) DeleteOffer(ctx context.Context, offerID uuid.UUID, actor entity.Identity) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		offer, err := offerRepo.FindByIDForUpdate(ctx, offerID)
		if err != nil {
			return mapOfferLookupError(err)
		}

		if !entity.CanManage(offer, actor) {
			return domainerrors.ErrForbidden.WrapMessage("offer is not managed by caller")
		}

		if err := offerRepo.Delete(ctx, offerID); err != nil {
			return mapOfferDeleteError(err)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Offer delete rejected", slog.String("offerID", offerID.String()), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Offer deleted", slog.String("offerID", offerID.String()), slog.String("actorID", actor.UserID.String()))

	return nil
}
