package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrZeroInstant       = errors.New("reservation instant cannot be zero")
	ErrPastInstant       = errors.New("reservation instant is in the past")
	ErrTerminalState     = errors.New("reservation is in a terminal state")
)

// Slot is the (table, instant) pair being reserved. Instants are normalized
// to UTC at construction so equality comparisons are timezone-independent.
type Slot struct {
	tableID int64
	at      time.Time
}

func NewSlot(tableID int64, at time.Time) (Slot, error) {
	if at.IsZero() {
		return Slot{}, ErrZeroInstant
	}
	return Slot{tableID: tableID, at: at.UTC()}, nil
}

func (s Slot) TableID() int64 { return s.tableID }
func (s Slot) At() time.Time  { return s.at }

func (s Slot) Equal(other Slot) bool {
	return s.tableID == other.tableID && s.at.Equal(other.at)
}

// Reservation holds a single table at a single instant for one diner.
// The diner reference never changes after creation.
type Reservation struct {
	id        int64
	slot      Slot
	dinerID   uuid.UUID
	status    Status
	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation builds a diner's reservation request. New reservations
// always start Pending; confirmation is an operator action.
func NewReservation(slot Slot, dinerID uuid.UUID) *Reservation {
	return &Reservation{
		slot:    slot,
		dinerID: dinerID,
		status:  StatusPending,
		version: 1,
	}
}

func ReconstructReservation(id int64, slot Slot, dinerID uuid.UUID, status Status, version int64, createdAt, updatedAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		slot:      slot,
		dinerID:   dinerID,
		status:    status,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) Slot() Slot           { return r.slot }
func (r *Reservation) TableID() int64       { return r.slot.tableID }
func (r *Reservation) At() time.Time        { return r.slot.at }
func (r *Reservation) DinerID() uuid.UUID   { return r.dinerID }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Version() int64       { return r.version }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) IsActive() bool   { return r.status.IsActive() }
func (r *Reservation) IsTerminal() bool { return r.status.IsTerminal() }

// TransitionTo validates and applies a status move.
func (r *Reservation) TransitionTo(to Status) error {
	if err := ValidateTransition(r.status, to); err != nil {
		return err
	}
	r.status = to
	return nil
}

// Reschedule moves the reservation to a new slot. Terminal reservations
// cannot be rescheduled; availability at the new slot is the caller's
// concern (checked against storage, excluding this reservation's id).
func (r *Reservation) Reschedule(slot Slot) error {
	if r.IsTerminal() {
		return ErrTerminalState
	}
	r.slot = slot
	return nil
}
