package request

import (
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/usecase/commands"
)

type CreateReservationRequest struct {
	TableID    int64     `json:"table_id" binding:"required"`
	ReservedAt time.Time `json:"reserved_at" binding:"required"`
}

type TransitionReservationRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed completed cancelled"`
	// Version enables optimistic concurrency; omitted means last-read wins.
	Version *int64 `json:"version"`
}

type RescheduleReservationRequest struct {
	TableID    int64     `json:"table_id" binding:"required"`
	ReservedAt time.Time `json:"reserved_at" binding:"required"`
	Version    *int64    `json:"version"`
}

func (r *CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		TableID: r.TableID,
		At:      r.ReservedAt,
	}
}

func (r *TransitionReservationRequest) ToInput() (commands.TransitionReservationInput, error) {
	status, err := reservation.NewStatus(r.Status)
	if err != nil {
		return commands.TransitionReservationInput{}, err
	}
	return commands.TransitionReservationInput{To: status, Version: r.Version}, nil
}

func (r *RescheduleReservationRequest) ToInput() commands.RescheduleReservationInput {
	return commands.RescheduleReservationInput{
		TableID: r.TableID,
		At:      r.ReservedAt,
		Version: r.Version,
	}
}
