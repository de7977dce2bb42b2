package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel mirrors the 'transactions' table.
// The composite unique index enforces one claim per (offer, beneficiary) pair.
type TransactionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OfferID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_transactions_offer_beneficiary,priority:1"`
	BeneficiaryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_transactions_offer_beneficiary,priority:2;index"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	CollectedAt   *time.Time
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time

	Beneficiary *UserModel `gorm:"foreignKey:BeneficiaryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// All lists every persisted model in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&OfferModel{},
		&TransactionModel{},
	}
}
