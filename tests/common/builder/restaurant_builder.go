//go:build unit || e2e

package builder

import (
	"time"

	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RestaurantBuilder struct {
	ID        int64
	Name      string
	Address   string
	Phone     string
	OwnerID   *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewRestaurantBuilder() *RestaurantBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	ownerID := uuid.New()
	return &RestaurantBuilder{
		ID:        100,
		Name:      "Chez Test",
		Address:   "1 Test Street",
		Phone:     "+1-555-0100",
		OwnerID:   &ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *RestaurantBuilder) WithOwnerID(id uuid.UUID) *RestaurantBuilder {
	b.OwnerID = &id
	return b
}

func (b *RestaurantBuilder) WithoutOwner() *RestaurantBuilder {
	b.OwnerID = nil
	return b
}

func (b *RestaurantBuilder) WithName(name string) *RestaurantBuilder {
	b.Name = name
	return b
}

func (b *RestaurantBuilder) BuildSnapshot() *commands.RestaurantSnapshot {
	return &commands.RestaurantSnapshot{
		ID:      b.ID,
		Name:    b.Name,
		Address: b.Address,
		Phone:   b.Phone,
		OwnerID: b.OwnerID,
	}
}

func (b *RestaurantBuilder) BuildView() *queries.RestaurantView {
	return &queries.RestaurantView{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		OwnerID:   b.OwnerID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *RestaurantBuilder) BuildCreateRequestDTO() reqdto.CreateRestaurantRequest {
	return reqdto.CreateRestaurantRequest{
		Name:    b.Name,
		Address: b.Address,
		Phone:   b.Phone,
		OwnerID: b.OwnerID,
	}
}

func (b *RestaurantBuilder) BuildUpdateRequestDTO() reqdto.UpdateRestaurantRequest {
	name := b.Name
	address := b.Address
	phone := b.Phone
	return reqdto.UpdateRestaurantRequest{
		Name:    &name,
		Address: &address,
		Phone:   &phone,
	}
}
