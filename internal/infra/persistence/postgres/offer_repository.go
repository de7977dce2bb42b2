package postgres

import (
	"context"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

// Create persists a new offer.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("quantity must be greater than zero")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("offer creator does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// FindByID retrieves an offer without locking it.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves an offer with SELECT ... FOR UPDATE.
func (repo *offerRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *offerRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := db.Where("id = ?", id).First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, wrapDBError(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

// Update persists the descriptive fields of an offer.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", offer.ID).
		Updates(map[string]any{
			"title":       offer.Title,
			"description": offer.Description,
			"quantity":    offer.Quantity,
			"location":    offer.Location,
			"latitude":    offer.Latitude,
			"longitude":   offer.Longitude,
			"expires_at":  offer.ExpiresAt,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("quantity must be greater than zero")
		}

		return wrapDBError(result.Error, "failed to update offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// SetAvailability writes the available flag.
func (repo *offerRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", id).
		Update("available", available)

	if result.Error != nil {
		return wrapDBError(result.Error, "failed to update offer availability")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// Delete removes an offer together with its transactions.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	var claims int64
	if err := db.Model(&model.TransactionModel{}).Where("offer_id = ?", id).Count(&claims).Error; err != nil {
		return wrapDBError(err, "failed to count offer transactions")
	}
	if claims > 0 {
		return repository.ErrOfferHasTransactions
	}

	result := db.Where("id = ?", id).Delete(&model.OfferModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrOfferHasTransactions
		}

		return wrapDBError(result.Error, "failed to delete offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// List returns one page of offers matching the filter, newest first.
func (repo *offerRepository) List(ctx context.Context, filter entity.OfferFilter, page entity.PageRequest) ([]*entity.Offer, int64, error) {
	var total int64
	if err := repo.scoped(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count offers")
	}

	var offerModels []*model.OfferModel
	if err := repo.scoped(ctx, filter).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&offerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list offers")
	}

	return toOfferDomains(offerModels), total, nil
}

// FindAll returns every offer matching the filter, newest first.
func (repo *offerRepository) FindAll(ctx context.Context, filter entity.OfferFilter) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel
	if err := repo.scoped(ctx, filter).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers")
	}

	return toOfferDomains(offerModels), nil
}

// Count returns the number of offers matching the filter.
func (repo *offerRepository) Count(ctx context.Context, filter entity.OfferFilter) (int64, error) {
	var total int64
	if err := repo.scoped(ctx, filter).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count offers")
	}

	return total, nil
}

func (repo *offerRepository) scoped(ctx context.Context, filter entity.OfferFilter) *gorm.DB {
	db := repo.db.WithContext(ctx).Model(&model.OfferModel{})
	if filter.Available != nil {
		db = db.Where("available = ?", *filter.Available)
	}
	if filter.Kind != nil {
		db = db.Where("kind = ?", string(*filter.Kind))
	}
	if filter.CreatorID != nil {
		db = db.Where("creator_id = ?", *filter.CreatorID)
	}
	if box := filter.Within; box != nil {
		db = db.Where("latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?",
			box.MinLat, box.MaxLat, box.MinLon, box.MaxLon)
	}

	return db
}

func toOfferDomains(offerModels []*model.OfferModel) []*entity.Offer {
	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers
}

func toOfferDomain(offerM *model.OfferModel) *entity.Offer {
	return &entity.Offer{
		ID:          offerM.ID,
		Title:       offerM.Title,
		Description: offerM.Description,
		Kind:        entity.OfferKind(offerM.Kind),
		Quantity:    offerM.Quantity,
		Location:    offerM.Location,
		Latitude:    offerM.Latitude,
		Longitude:   offerM.Longitude,
		ExpiresAt:   offerM.ExpiresAt,
		Available:   offerM.Available,
		CreatorID:   offerM.CreatorID,
		CreatedAt:   offerM.CreatedAt,
		UpdatedAt:   offerM.UpdatedAt,
	}
}

func fromOfferDomain(offer *entity.Offer) *model.OfferModel {
	return &model.OfferModel{
		ID:          offer.ID,
		Title:       offer.Title,
		Description: offer.Description,
		Kind:        string(offer.Kind),
		Quantity:    offer.Quantity,
		Location:    offer.Location,
		Latitude:    offer.Latitude,
		Longitude:   offer.Longitude,
		ExpiresAt:   offer.ExpiresAt,
		Available:   offer.Available,
		CreatorID:   offer.CreatorID,
		CreatedAt:   offer.CreatedAt,
		UpdatedAt:   offer.UpdatedAt,
	}
}
