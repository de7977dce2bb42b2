package entity

import (
	"time"

	"github.com/google/uuid"
)

// OfferKind classifies what an offer gives away.
type OfferKind string

const (
	OfferKindGoods   OfferKind = "goods"
	OfferKindMeals   OfferKind = "meals"
	OfferKindCredits OfferKind = "credits"
)

// IsValid checks if the OfferKind is a valid value.
func (k OfferKind) IsValid() bool {
	switch k {
	case OfferKindGoods, OfferKindMeals, OfferKindCredits:
		return true
	default:
		return false
	}
}

// Offer is a redeemable unit posted by a donor or partner.
//
// Available is owned by the reservation engine: it is false exactly while
// the offer has a reserved transaction, or after that transaction was collected.
type Offer struct {
	ID          uuid.UUID
	Title       string
	Description string
	Kind        OfferKind
	Quantity    int
	Location    string
	Latitude    *float64
	Longitude   *float64
	ExpiresAt   *time.Time // Informational only, never drives a transition.
	Available   bool
	CreatorID   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerID implements Owned.
func (o *Offer) OwnerID() uuid.UUID {
	return o.CreatorID
}

// HasCoordinates reports whether the offer can take part in proximity searches.
func (o *Offer) HasCoordinates() bool {
	return o.Latitude != nil && o.Longitude != nil
}

// OfferPatch lists the fields a creator or admin may change. Availability is
// not patchable.
type OfferPatch struct {
	Title       *string
	Description *string
	Quantity    *int
	Location    *string
	Latitude    *float64
	Longitude   *float64
	ExpiresAt   *time.Time
}

// Apply copies the set fields of the patch onto the offer.
func (p *OfferPatch) Apply(o *Offer) {
	if p.Title != nil {
		o.Title = *p.Title
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.Location != nil {
		o.Location = *p.Location
	}
	if p.Latitude != nil {
		o.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		o.Longitude = p.Longitude
	}
	if p.ExpiresAt != nil {
		o.ExpiresAt = p.ExpiresAt
	}
}

// BoundingBox is a latitude/longitude rectangle used to prefilter proximity queries.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// OfferFilter narrows offer listings. Nil fields are not applied.
type OfferFilter struct {
	Available *bool
	Kind      *OfferKind
	CreatorID *uuid.UUID
	Within    *BoundingBox
}
