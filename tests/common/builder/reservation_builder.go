//go:build unit || e2e

package builder

import (
	"time"

	domreservation "tablebook/internal/domain/reservation"
	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID                int64
	TableID           int64
	TableCode         string
	RestaurantID      int64
	RestaurantName    string
	RestaurantOwnerID *uuid.UUID
	DinerID           uuid.UUID
	DinerEmail        string
	ReservedAt        time.Time
	Status            domreservation.Status
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	ownerID := uuid.New()
	return &ReservationBuilder{
		ID:                1,
		TableID:           10,
		TableCode:         "T-1",
		RestaurantID:      100,
		RestaurantName:    "Chez Test",
		RestaurantOwnerID: &ownerID,
		DinerID:           uuid.New(),
		DinerEmail:        "diner@example.com",
		ReservedAt:        now.Add(24 * time.Hour),
		Status:            domreservation.StatusPending,
		Version:           1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithDinerID(id uuid.UUID) *ReservationBuilder {
	b.DinerID = id
	return b
}

func (b *ReservationBuilder) WithOwnerID(id uuid.UUID) *ReservationBuilder {
	b.RestaurantOwnerID = &id
	return b
}

func (b *ReservationBuilder) WithoutOwner() *ReservationBuilder {
	b.RestaurantOwnerID = nil
	return b
}

func (b *ReservationBuilder) WithStatus(s domreservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithVersion(v int64) *ReservationBuilder {
	b.Version = v
	return b
}

func (b *ReservationBuilder) WithReservedAt(t time.Time) *ReservationBuilder {
	b.ReservedAt = t
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	slot, err := domreservation.NewSlot(b.TableID, b.ReservedAt)
	if err != nil {
		return nil, err
	}
	return domreservation.ReconstructReservation(b.ID, slot, b.DinerID, b.Status, b.Version, b.CreatedAt, b.UpdatedAt), nil
}

func (b *ReservationBuilder) BuildSnapshot() *commands.ReservationSnapshot {
	return &commands.ReservationSnapshot{
		ID:                b.ID,
		TableID:           b.TableID,
		ReservedAt:        b.ReservedAt,
		DinerID:           b.DinerID,
		Status:            b.Status,
		Version:           b.Version,
		RestaurantID:      b.RestaurantID,
		RestaurantOwnerID: b.RestaurantOwnerID,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:                b.ID,
		TableID:           b.TableID,
		TableCode:         b.TableCode,
		RestaurantID:      b.RestaurantID,
		RestaurantName:    b.RestaurantName,
		DinerID:           b.DinerID,
		DinerEmail:        b.DinerEmail,
		ReservedAt:        b.ReservedAt,
		Status:            b.Status.String(),
		Version:           b.Version,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
		RestaurantOwnerID: b.RestaurantOwnerID,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		TableID:    b.TableID,
		ReservedAt: b.ReservedAt,
	}
}

func (b *ReservationBuilder) BuildTransitionRequestDTO(status string) reqdto.TransitionReservationRequest {
	version := b.Version
	return reqdto.TransitionReservationRequest{
		Status:  status,
		Version: &version,
	}
}
