// Package authz centralizes every role-based access decision as pure
// predicates over a Principal and a small resource reference. Read and
// write paths share these functions instead of re-implementing the rules
// per handler.
package authz

import (
	"tablebook/internal/domain/user"

	"github.com/google/uuid"
)

// RestaurantRef carries the fields access decisions need; nil owner means
// the restaurant is unclaimed.
type RestaurantRef struct {
	OwnerID *uuid.UUID
}

// TableRef identifies a table through its restaurant's owner.
type TableRef struct {
	RestaurantOwnerID *uuid.UUID
}

// ReservationRef identifies a reservation by its diner and the owner of the
// restaurant whose table it occupies.
type ReservationRef struct {
	DinerID           uuid.UUID
	RestaurantOwnerID *uuid.UUID
}

// ReviewRef identifies a review by its diner and the owner of the
// restaurant the reviewed reservation belonged to.
type ReviewRef struct {
	DinerID           uuid.UUID
	RestaurantOwnerID *uuid.UUID
}

func ownedBy(ownerID *uuid.UUID, p user.Principal) bool {
	return ownerID != nil && *ownerID == p.ID
}

// --- Restaurant ---

// Restaurants are publicly readable.
func CanViewRestaurant(user.Principal, RestaurantRef) bool {
	return true
}

// CanCreateRestaurant: admins and operators register restaurants; diners
// never do.
func CanCreateRestaurant(p user.Principal) bool {
	return p.IsAdmin() || p.IsOperator()
}

func CanEditRestaurant(p user.Principal, r RestaurantRef) bool {
	if p.IsAdmin() {
		return true
	}
	return p.IsOperator() && ownedBy(r.OwnerID, p)
}

// Deleting a restaurant is admin-only; operators cannot delete even their own.
func CanDeleteRestaurant(p user.Principal, _ RestaurantRef) bool {
	return p.IsAdmin()
}

// --- Table ---

// Tables are readable by everyone (diners browse them to book).
func CanViewTable(user.Principal, TableRef) bool {
	return true
}

func CanMutateTable(p user.Principal, t TableRef) bool {
	if p.IsAdmin() {
		return true
	}
	return p.IsOperator() && ownedBy(t.RestaurantOwnerID, p)
}

// --- Reservation ---

func CanViewReservation(p user.Principal, r ReservationRef) bool {
	switch p.Role {
	case user.RoleAdmin:
		return true
	case user.RoleOperator:
		return ownedBy(r.RestaurantOwnerID, p)
	case user.RoleDiner:
		return r.DinerID == p.ID
	default:
		return false
	}
}

// Only diners create reservations, and only for themselves.
func CanCreateReservation(p user.Principal) bool {
	return p.IsDiner()
}

// CanTransitionReservation covers status edits: operators on their own
// restaurants' reservations, admins everywhere, diners never.
func CanTransitionReservation(p user.Principal, r ReservationRef) bool {
	if p.IsAdmin() {
		return true
	}
	return p.IsOperator() && ownedBy(r.RestaurantOwnerID, p)
}

// CanRescheduleReservation covers table/time edits, which are admin-only;
// operators are restricted to the status field.
func CanRescheduleReservation(p user.Principal, _ ReservationRef) bool {
	return p.IsAdmin()
}

func CanDeleteReservation(p user.Principal, r ReservationRef) bool {
	if p.IsAdmin() {
		return true
	}
	return p.IsOperator() && ownedBy(r.RestaurantOwnerID, p)
}

// --- Review ---

func CanViewReview(p user.Principal, r ReviewRef) bool {
	switch p.Role {
	case user.RoleAdmin:
		return true
	case user.RoleOperator:
		return ownedBy(r.RestaurantOwnerID, p)
	case user.RoleDiner:
		return r.DinerID == p.ID
	default:
		return false
	}
}

func CanMutateReview(p user.Principal, r ReviewRef) bool {
	if p.IsAdmin() {
		return true
	}
	return p.IsDiner() && r.DinerID == p.ID
}
