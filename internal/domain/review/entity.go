package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
)

// Review is attached to exactly one reservation by the diner who held it.
type Review struct {
	id            int64
	reservationID int64
	dinerID       uuid.UUID
	rating        Rating
	comment       Comment
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReview(reservationID int64, dinerID uuid.UUID, rating Rating, comment Comment) *Review {
	return &Review{
		reservationID: reservationID,
		dinerID:       dinerID,
		rating:        rating,
		comment:       comment,
	}
}

func ReconstructReview(id, reservationID int64, dinerID uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:            id,
		reservationID: reservationID,
		dinerID:       dinerID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Review) ID() int64            { return r.id }
func (r *Review) ReservationID() int64 { return r.reservationID }
func (r *Review) DinerID() uuid.UUID   { return r.dinerID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }

func (r *Review) SetRating(rating Rating)    { r.rating = rating }
func (r *Review) SetComment(comment Comment) { r.comment = comment }
