package request

import (
	"tablebook/internal/usecase/commands"
)

type CreateTableRequest struct {
	RestaurantID int64  `json:"restaurant_id" binding:"required"`
	Code         string `json:"code" binding:"required,max=10"`
	Capacity     int    `json:"capacity" binding:"required,min=1,max=20"`
}

type UpdateTableRequest struct {
	Code     *string `json:"code" binding:"omitempty,max=10"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1,max=20"`
}

func (r *CreateTableRequest) ToInput() commands.CreateTableInput {
	return commands.CreateTableInput{
		RestaurantID: r.RestaurantID,
		Code:         r.Code,
		Capacity:     r.Capacity,
	}
}

func (r *UpdateTableRequest) ToInput() commands.UpdateTableInput {
	return commands.UpdateTableInput{
		Code:     r.Code,
		Capacity: r.Capacity,
	}
}
