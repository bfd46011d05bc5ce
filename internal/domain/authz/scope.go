package authz

import (
	"tablebook/internal/domain/user"

	"github.com/google/uuid"
)

// Scope is a role-derived filter specification consumed by read stores.
// Exactly one of the narrowing fields is set unless All is true; a zero
// Scope matches nothing.
type Scope struct {
	// All matches every row (admin).
	All bool
	// DinerID restricts to rows belonging to this diner.
	DinerID *uuid.UUID
	// OwnerID restricts to rows on restaurants owned by this operator.
	OwnerID *uuid.UUID
}

// ReservationScope yields the visibility filter for listing reservations:
// admins see all, operators see reservations on their own tables, diners
// see their own reservations.
func ReservationScope(p user.Principal) Scope {
	switch p.Role {
	case user.RoleAdmin:
		return Scope{All: true}
	case user.RoleOperator:
		id := p.ID
		return Scope{OwnerID: &id}
	case user.RoleDiner:
		id := p.ID
		return Scope{DinerID: &id}
	default:
		return Scope{}
	}
}

// ReviewScope mirrors ReservationScope for reviews.
func ReviewScope(p user.Principal) Scope {
	switch p.Role {
	case user.RoleAdmin:
		return Scope{All: true}
	case user.RoleOperator:
		id := p.ID
		return Scope{OwnerID: &id}
	case user.RoleDiner:
		id := p.ID
		return Scope{DinerID: &id}
	default:
		return Scope{}
	}
}

// RestaurantScope: listings are public, but an operator asking for "mine"
// gets the owned subset.
func RestaurantScope(p user.Principal, mineOnly bool) Scope {
	if mineOnly && p.IsOperator() {
		id := p.ID
		return Scope{OwnerID: &id}
	}
	return Scope{All: true}
}
