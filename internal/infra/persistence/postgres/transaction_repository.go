package postgres

import (
	"context"
	"time"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// transactionRepository implements the repository.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create persists a new transaction.
func (repo *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	txM := fromTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTransaction
		}

		return wrapDBError(err, "failed to create transaction")
	}

	tx.CreatedAt = txM.CreatedAt
	tx.UpdatedAt = txM.UpdatedAt

	return nil
}

// FindByID retrieves a transaction without locking it.
func (repo *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return repo.findOne(repo.db.WithContext(ctx), "id = ?", id)
}

// FindByIDForUpdate retrieves a transaction with SELECT ... FOR UPDATE.
func (repo *transactionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), "id = ?", id)
}

// FindByOfferAndBeneficiary returns the transaction of a beneficiary on an offer, in any status.
func (repo *transactionRepository) FindByOfferAndBeneficiary(ctx context.Context, offerID, beneficiaryID uuid.UUID) (*entity.Transaction, error) {
	return repo.findOne(repo.db.WithContext(ctx), "offer_id = ? AND beneficiary_id = ?", offerID, beneficiaryID)
}

// FindActiveByOffer returns the reserved or collected transaction of an offer.
func (repo *transactionRepository) FindActiveByOffer(ctx context.Context, offerID uuid.UUID) (*entity.Transaction, error) {
	return repo.findOne(repo.db.WithContext(ctx), "offer_id = ? AND status IN ?", offerID, activeStatuses())
}

func (repo *transactionRepository) findOne(db *gorm.DB, query string, args ...any) (*entity.Transaction, error) {
	var txM model.TransactionModel

	if err := db.Where(query, args...).First(&txM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, wrapDBError(err, "failed to find transaction")
	}

	return toTransactionDomain(&txM), nil
}

// UpdateStatus writes the status of a transaction and stamps the collection time.
func (repo *transactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) error {
	changes := map[string]any{"status": string(status)}
	if status == entity.TransactionStatusCollected {
		changes["collected_at"] = time.Now().UTC()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", id).
		Updates(changes)

	if result.Error != nil {
		return wrapDBError(result.Error, "failed to update transaction status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// ListByBeneficiary returns all transactions of a beneficiary, newest first.
func (repo *transactionRepository) ListByBeneficiary(ctx context.Context, beneficiaryID uuid.UUID) ([]*entity.Transaction, error) {
	var txModels []*model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("beneficiary_id = ?", beneficiaryID).
		Order("created_at DESC").
		Find(&txModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions by beneficiary")
	}

	return toTransactionDomains(txModels), nil
}

// List returns one page of transactions matching the filter, newest first.
func (repo *transactionRepository) List(ctx context.Context, filter entity.TransactionFilter, page entity.PageRequest) ([]*entity.Transaction, int64, error) {
	var total int64
	if err := repo.scoped(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count transactions")
	}

	var txModels []*model.TransactionModel
	if err := repo.scoped(ctx, filter).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&txModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list transactions")
	}

	return toTransactionDomains(txModels), total, nil
}

// Count returns the number of transactions matching the filter.
func (repo *transactionRepository) Count(ctx context.Context, filter entity.TransactionFilter) (int64, error) {
	var total int64
	if err := repo.scoped(ctx, filter).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count transactions")
	}

	return total, nil
}

// CountActiveByBeneficiary returns the number of reserved or collected transactions of a beneficiary.
func (repo *transactionRepository) CountActiveByBeneficiary(ctx context.Context, beneficiaryID uuid.UUID) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("beneficiary_id = ? AND status IN ?", beneficiaryID, activeStatuses()).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active transactions")
	}

	return total, nil
}

func (repo *transactionRepository) scoped(ctx context.Context, filter entity.TransactionFilter) *gorm.DB {
	db := repo.db.WithContext(ctx).Model(&model.TransactionModel{})
	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}
	if filter.BeneficiaryID != nil {
		db = db.Where("beneficiary_id = ?", *filter.BeneficiaryID)
	}
	if filter.Collected {
		db = db.Where("collected_at IS NOT NULL")
	}
	if filter.OfferID != nil {
		db = db.Where("offer_id = ?", *filter.OfferID)
	}

	return db
}

func activeStatuses() []string {
	statuses := make([]string, 0, len(entity.ActiveTransactionStatuses))
	for _, s := range entity.ActiveTransactionStatuses {
		statuses = append(statuses, string(s))
	}

	return statuses
}

func toTransactionDomains(txModels []*model.TransactionModel) []*entity.Transaction {
	txs := make([]*entity.Transaction, 0, len(txModels))
	for _, txM := range txModels {
		txs = append(txs, toTransactionDomain(txM))
	}

	return txs
}

func toTransactionDomain(txM *model.TransactionModel) *entity.Transaction {
	return &entity.Transaction{
		ID:            txM.ID,
		OfferID:       txM.OfferID,
		BeneficiaryID: txM.BeneficiaryID,
		Status:        entity.TransactionStatus(txM.Status),
		CollectedAt:   txM.CollectedAt,
		CreatedAt:     txM.CreatedAt,
		UpdatedAt:     txM.UpdatedAt,
	}
}

func fromTransactionDomain(tx *entity.Transaction) *model.TransactionModel {
	return &model.TransactionModel{
		ID:            tx.ID,
		OfferID:       tx.OfferID,
		BeneficiaryID: tx.BeneficiaryID,
		Status:        string(tx.Status),
		CollectedAt:   tx.CollectedAt,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}
}
