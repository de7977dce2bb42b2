// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AnonymizedName replaces the display name of a removed account.
const AnonymizedName = "Deleted user"

// User is an account in the marketplace. Each account holds exactly one role.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // Login identifier, unique across accounts.
	Name      string    // Display name.
	Role      Role      // Governs which marketplace actions the account may perform.
	IsActive  bool      // Deactivated accounts cannot authenticate.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity returns the authenticated view of the user.
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Role: u.Role}
}

// OwnerID implements Owned. An account is owned by itself.
func (u *User) OwnerID() uuid.UUID {
	return u.ID
}

// Anonymize strips personal data from the account and deactivates it.
// Offers and transactions referencing the account are left intact.
func (u *User) Anonymize() {
	u.Name = AnonymizedName
	u.Email = fmt.Sprintf("deleted_%s@deleted.invalid", u.ID)
	u.IsActive = false
}

// UserStats aggregates the marketplace activity of a single user.
type UserStats struct {
	TotalOffers        int64 `json:"total_offers"`
	TotalTransactions  int64 `json:"total_transactions"`
	ActiveTransactions int64 `json:"active_transactions"`
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	Role     *Role
	IsActive *bool
}
