package commands

import (
	"context"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/restaurant"
	"tablebook/internal/domain/review"
	"tablebook/internal/domain/table"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads. Commands never load full views;
// they load just enough to authorize and validate.

type RestaurantSnapshot struct {
	ID      int64
	Name    string
	Address string
	Phone   string
	OwnerID *uuid.UUID
}

type TableSnapshot struct {
	ID                int64
	RestaurantID      int64
	Code              string
	Capacity          int32
	RestaurantOwnerID *uuid.UUID
}

type ReservationSnapshot struct {
	ID                int64
	TableID           int64
	ReservedAt        time.Time
	DinerID           uuid.UUID
	Status            reservation.Status
	Version           int64
	RestaurantID      int64
	RestaurantOwnerID *uuid.UUID
}

type ReviewSnapshot struct {
	ID                int64
	ReservationID     int64
	DinerID           uuid.UUID
	Rating            int32
	Comment           *string
	RestaurantOwnerID *uuid.UUID
}

// CommandReads are the lookups commands perform before mutating. The
// availability check here is advisory; the storage uniqueness constraint is
// the real arbiter under concurrency.
type CommandReads interface {
	RestaurantByID(ctx context.Context, id int64) (*RestaurantSnapshot, error)
	TableByID(ctx context.Context, id int64) (*TableSnapshot, error)
	ReservationByID(ctx context.Context, id int64) (*ReservationSnapshot, error)
	ReviewByID(ctx context.Context, id int64) (*ReviewSnapshot, error)

	ActiveReservationExists(ctx context.Context, tableID int64, at time.Time, excludeID int64) (bool, error)
	TableHasActiveReservations(ctx context.Context, tableID int64) (bool, error)
	RestaurantHasActiveReservations(ctx context.Context, restaurantID int64) (bool, error)
	ReviewExistsForReservation(ctx context.Context, reservationID int64) (bool, error)
}

type RestaurantRepository interface {
	Create(ctx context.Context, r *restaurant.Restaurant) (int64, error)
	Update(ctx context.Context, r *restaurant.Restaurant) error
	Delete(ctx context.Context, id int64) error
}

type TableRepository interface {
	Create(ctx context.Context, t *table.Table) (int64, error)
	Update(ctx context.Context, t *table.Table) error
	Delete(ctx context.Context, id int64) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) (int64, error)
	// UpdateStatus applies an optimistic-concurrency update: the write only
	// lands if the stored version matches expectedVersion.
	UpdateStatus(ctx context.Context, id int64, to reservation.Status, expectedVersion int64) error
	UpdateSlot(ctx context.Context, id int64, slot reservation.Slot, expectedVersion int64) error
	Delete(ctx context.Context, id int64) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) (int64, error)
	Update(ctx context.Context, r *review.Review) error
	Delete(ctx context.Context, id int64) error
}

// NotificationDispatcher delivers a message to a contact address.
// Implementations are fire-and-forget: they log and swallow transport
// failures, so callers never fail a domain operation on a lost message.
type NotificationDispatcher interface {
	Send(ctx context.Context, recipient, subject, body string)
}

type PrincipalContact struct {
	Email string
	Role  string
}

// PrincipalResolver maps an opaque principal id to a contact address and
// role claim. Read-only.
type PrincipalResolver interface {
	Resolve(ctx context.Context, id uuid.UUID) (*PrincipalContact, error)
}

// RestaurantCacheInvalidator drops the cached public restaurant listing
// after restaurant writes.
type RestaurantCacheInvalidator interface {
	Invalidate(ctx context.Context)
}
