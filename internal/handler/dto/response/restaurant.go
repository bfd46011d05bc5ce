package response

import (
	"log/slog"
	"time"

	"tablebook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RestaurantResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	OwnerID   *string   `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromRestaurantView(v *queries.RestaurantView) *RestaurantResponse {
	var resp RestaurantResponse
	if err := copier.Copy(&resp, v); err != nil {
		slog.Error("restaurant response mapping failed", "error", err)
	}
	if v.OwnerID != nil {
		s := v.OwnerID.String()
		resp.OwnerID = &s
	}
	return &resp
}

func FromRestaurantList(items []*queries.RestaurantView) []*RestaurantResponse {
	res := make([]*RestaurantResponse, len(items))
	for i, it := range items {
		res[i] = FromRestaurantView(it)
	}
	return res
}
