package request

import (
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRestaurantRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"required,max=200"`
	Phone   string `json:"phone" binding:"required,max=20"`
	// OwnerID is honored for admin callers only.
	OwnerID *uuid.UUID `json:"owner_id"`
}

type UpdateRestaurantRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100"`
	Address *string `json:"address" binding:"omitempty,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
}

func (r *CreateRestaurantRequest) ToInput() commands.CreateRestaurantInput {
	return commands.CreateRestaurantInput{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		OwnerID: r.OwnerID,
	}
}

func (r *UpdateRestaurantRequest) ToInput() commands.UpdateRestaurantInput {
	return commands.UpdateRestaurantInput{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
	}
}
