package restaurant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("restaurant name cannot be empty")
	ErrNameTooLong    = errors.New("restaurant name exceeds maximum length")
	ErrEmptyAddress   = errors.New("restaurant address cannot be empty")
	ErrAddressTooLong = errors.New("restaurant address exceeds maximum length")
	ErrEmptyPhone     = errors.New("restaurant phone cannot be empty")
	ErrPhoneTooLong   = errors.New("restaurant phone exceeds maximum length")
)

// Restaurant is owned by at most one operator principal. An unclaimed
// restaurant (nil owner) is visible but has no operator to notify.
type Restaurant struct {
	id        int64
	name      Name
	address   Address
	phone     Phone
	ownerID   *uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewRestaurant(name Name, address Address, phone Phone, ownerID *uuid.UUID) *Restaurant {
	return &Restaurant{
		name:    name,
		address: address,
		phone:   phone,
		ownerID: ownerID,
	}
}

func ReconstructRestaurant(id int64, name Name, address Address, phone Phone, ownerID *uuid.UUID, createdAt, updatedAt time.Time) *Restaurant {
	return &Restaurant{
		id:        id,
		name:      name,
		address:   address,
		phone:     phone,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Restaurant) ID() int64            { return r.id }
func (r *Restaurant) Name() Name           { return r.name }
func (r *Restaurant) Address() Address     { return r.address }
func (r *Restaurant) Phone() Phone         { return r.phone }
func (r *Restaurant) OwnerID() *uuid.UUID  { return r.ownerID }
func (r *Restaurant) CreatedAt() time.Time { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time { return r.updatedAt }

func (r *Restaurant) IsOwnedBy(principalID uuid.UUID) bool {
	return r.ownerID != nil && *r.ownerID == principalID
}
