package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel mirrors the 'offers' table.
type OfferModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text"`
	Kind        string     `gorm:"type:varchar(20);not null;index"`
	Quantity    int        `gorm:"not null;check:chk_offers_quantity_positive,quantity > 0"`
	Location    string     `gorm:"type:varchar(255)"`
	Latitude    *float64   `gorm:"type:double precision"`
	Longitude   *float64   `gorm:"type:double precision"`
	ExpiresAt   *time.Time
	Available   bool      `gorm:"not null;index"`
	CreatorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	Creator      *UserModel         `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
	Transactions []TransactionModel `gorm:"foreignKey:OfferID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
