package response

import (
	"time"

	"tablebook/internal/usecase/queries"
)

type ReservationResponse struct {
	ID             int64     `json:"id"`
	TableID        int64     `json:"table_id"`
	TableCode      string    `json:"table_code"`
	RestaurantID   int64     `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	DinerID        string    `json:"diner_id"`
	DinerEmail     string    `json:"diner_email"`
	ReservedAt     time.Time `json:"reserved_at"`
	Status         string    `json:"status"`
	Version        int64     `json:"version"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:             v.ID,
		TableID:        v.TableID,
		TableCode:      v.TableCode,
		RestaurantID:   v.RestaurantID,
		RestaurantName: v.RestaurantName,
		DinerID:        v.DinerID.String(),
		DinerEmail:     v.DinerEmail,
		ReservedAt:     v.ReservedAt,
		Status:         v.Status,
		Version:        v.Version,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromReservationList(items []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(items))
	for i, it := range items {
		res[i] = FromReservationView(it)
	}
	return res
}
