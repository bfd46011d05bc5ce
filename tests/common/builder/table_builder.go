//go:build unit || e2e

package builder

import (
	"time"

	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type TableBuilder struct {
	ID                int64
	RestaurantID      int64
	Code              string
	Capacity          int
	RestaurantOwnerID *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewTableBuilder() *TableBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	ownerID := uuid.New()
	return &TableBuilder{
		ID:                10,
		RestaurantID:      100,
		Code:              "T-1",
		Capacity:          4,
		RestaurantOwnerID: &ownerID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *TableBuilder) WithOwnerID(id uuid.UUID) *TableBuilder {
	b.RestaurantOwnerID = &id
	return b
}

func (b *TableBuilder) WithoutOwner() *TableBuilder {
	b.RestaurantOwnerID = nil
	return b
}

func (b *TableBuilder) WithCapacity(c int) *TableBuilder {
	b.Capacity = c
	return b
}

func (b *TableBuilder) BuildSnapshot() *commands.TableSnapshot {
	return &commands.TableSnapshot{
		ID:                b.ID,
		RestaurantID:      b.RestaurantID,
		Code:              b.Code,
		Capacity:          int32(b.Capacity),
		RestaurantOwnerID: b.RestaurantOwnerID,
	}
}

func (b *TableBuilder) BuildView() *queries.TableView {
	return &queries.TableView{
		ID:           b.ID,
		RestaurantID: b.RestaurantID,
		Code:         b.Code,
		Capacity:     int32(b.Capacity),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *TableBuilder) BuildCreateRequestDTO() reqdto.CreateTableRequest {
	return reqdto.CreateTableRequest{
		RestaurantID: b.RestaurantID,
		Code:         b.Code,
		Capacity:     b.Capacity,
	}
}
