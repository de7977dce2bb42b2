package handler

import (
	"time"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      entity.Role `json:"role"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
}

// OfferResponse is the public view of an offer.
type OfferResponse struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Kind        entity.OfferKind `json:"kind"`
	Quantity    int              `json:"quantity"`
	Location    string           `json:"location"`
	Latitude    *float64         `json:"latitude,omitempty"`
	Longitude   *float64         `json:"longitude,omitempty"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
	Available   bool             `json:"available"`
	CreatorID   uuid.UUID        `json:"creator_id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// TransactionResponse is the public view of a transaction.
type TransactionResponse struct {
	ID            uuid.UUID                `json:"id"`
	OfferID       uuid.UUID                `json:"offer_id"`
	BeneficiaryID uuid.UUID                `json:"beneficiary_id"`
	Status        entity.TransactionStatus `json:"status"`
	CollectedAt   *time.Time               `json:"collected_at,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func newOfferResponse(offer *entity.Offer) OfferResponse {
	return OfferResponse{
		ID:          offer.ID,
		Title:       offer.Title,
		Description: offer.Description,
		Kind:        offer.Kind,
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

func newTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		OfferID:       tx.OfferID,
		BeneficiaryID: tx.BeneficiaryID,
		Status:        tx.Status,
		CollectedAt:   tx.CollectedAt,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}
}

func mapSlice[T, R any](items []T, convert func(T) R) []R {
	result := make([]R, len(items))
	for i, item := range items {
		result[i] = convert(item)
	}

	return result
}

func mapPage[T, R any](page *entity.Page[T], convert func(T) R) entity.Page[R] {
	return entity.Page[R]{
		Items: mapSlice(page.Items, convert),
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
		Pages: page.Pages,
	}
}
