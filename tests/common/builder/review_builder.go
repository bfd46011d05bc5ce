//go:build unit || e2e

package builder

import (
	"time"

	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID                int64
	ReservationID     int64
	RestaurantID      int64
	RestaurantName    string
	RestaurantOwnerID *uuid.UUID
	DinerID           uuid.UUID
	DinerEmail        string
	Rating            int
	Comment           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	ownerID := uuid.New()
	return &ReviewBuilder{
		ID:                1,
		ReservationID:     1,
		RestaurantID:      100,
		RestaurantName:    "Chez Test",
		RestaurantOwnerID: &ownerID,
		DinerID:           uuid.New(),
		DinerEmail:        "diner@example.com",
		Rating:            5,
		Comment:           "Excellent service!",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *ReviewBuilder) WithDinerID(id uuid.UUID) *ReviewBuilder {
	b.DinerID = id
	return b
}

func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.Rating = rating
	return b
}

func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.Comment = comment
	return b
}

func (b *ReviewBuilder) BuildSnapshot() *commands.ReviewSnapshot {
	var comment *string
	if b.Comment != "" {
		c := b.Comment
		comment = &c
	}
	return &commands.ReviewSnapshot{
		ID:                b.ID,
		ReservationID:     b.ReservationID,
		DinerID:           b.DinerID,
		Rating:            int32(b.Rating),
		Comment:           comment,
		RestaurantOwnerID: b.RestaurantOwnerID,
	}
}

func (b *ReviewBuilder) BuildView() *queries.ReviewView {
	var comment *string
	if b.Comment != "" {
		c := b.Comment
		comment = &c
	}
	return &queries.ReviewView{
		ID:                b.ID,
		ReservationID:     b.ReservationID,
		RestaurantID:      b.RestaurantID,
		RestaurantName:    b.RestaurantName,
		DinerID:           b.DinerID,
		DinerEmail:        b.DinerEmail,
		Rating:            int32(b.Rating),
		Comment:           comment,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
		RestaurantOwnerID: b.RestaurantOwnerID,
	}
}

func (b *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ReservationID: b.ReservationID,
		Rating:        b.Rating,
		Comment:       b.Comment,
	}
}

func (b *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	rating := b.Rating
	comment := b.Comment
	return reqdto.UpdateReviewRequest{
		Rating:  &rating,
		Comment: &comment,
	}
}
