package review

import (
	"errors"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrNotReservationDiner = errors.New("reviewer is not the reservation's diner")
	ErrNotCompleted        = errors.New("reservation is not completed")
	ErrAlreadyReviewed     = errors.New("reservation already has a review")
)

// CanCreate gates review creation: only the diner who held the reservation
// may review it, only once it is completed, and only once. The three
// refusals are distinct so callers can report them separately.
func CanCreate(p user.Principal, reservationDinerID uuid.UUID, status reservation.Status, alreadyReviewed bool) error {
	if !p.IsDiner() || p.ID != reservationDinerID {
		return ErrNotReservationDiner
	}
	if status != reservation.StatusCompleted {
		return ErrNotCompleted
	}
	if alreadyReviewed {
		return ErrAlreadyReviewed
	}
	return nil
}

// CanEditOrDelete permits admins and the owning diner to change a review.
func CanEditOrDelete(p user.Principal, reviewDinerID uuid.UUID) bool {
	if p.IsAdmin() {
		return true
	}
	return p.IsDiner() && p.ID == reviewDinerID
}
