package entity

import "github.com/google/uuid"

// Identity is the resolved caller of an operation.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Owned is implemented by resources that have a single owning user.
type Owned interface {
	OwnerID() uuid.UUID
}

// CanManage is the single ownership predicate: the owner of a resource
// or an admin may modify it.
func CanManage(resource Owned, actor Identity) bool {
	if actor.IsAdmin() {
		return true
	}

	return resource.OwnerID() == actor.UserID
}
