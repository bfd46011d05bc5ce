package response

import (
	"log/slog"
	"time"

	"tablebook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type TableResponse struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurant_id"`
	Code         string    `json:"code"`
	Capacity     int32     `json:"capacity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromTableView(v *queries.TableView) *TableResponse {
	var resp TableResponse
	if err := copier.Copy(&resp, v); err != nil {
		slog.Error("table response mapping failed", "error", err)
	}
	return &resp
}

func FromTableList(items []*queries.TableView) []*TableResponse {
	res := make([]*TableResponse, len(items))
	for i, it := range items {
		res[i] = FromTableView(it)
	}
	return res
}
