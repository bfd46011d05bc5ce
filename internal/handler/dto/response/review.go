package response

import (
	"time"

	"tablebook/internal/usecase/queries"
)

type ReviewResponse struct {
	ID             int64     `json:"id"`
	ReservationID  int64     `json:"reservation_id"`
	RestaurantID   int64     `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	DinerID        string    `json:"diner_id"`
	DinerEmail     string    `json:"diner_email"`
	Rating         int32     `json:"rating"`
	Comment        *string   `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:             v.ID,
		ReservationID:  v.ReservationID,
		RestaurantID:   v.RestaurantID,
		RestaurantName: v.RestaurantName,
		DinerID:        v.DinerID.String(),
		DinerEmail:     v.DinerEmail,
		Rating:         v.Rating,
		Comment:        v.Comment,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromReviewList(items []*queries.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, len(items))
	for i, it := range items {
		res[i] = FromReviewView(it)
	}
	return res
}
