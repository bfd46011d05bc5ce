//go:build unit

package review_test

import (
	"testing"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/review"
	"tablebook/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanCreate(t *testing.T) {
	dinerID := uuid.New()
	diner := user.NewPrincipal(dinerID, user.RoleDiner)

	cases := []struct {
		name            string
		p               user.Principal
		reservationOf   uuid.UUID
		status          reservation.Status
		alreadyReviewed bool
		errIs           error
	}{
		{
			name:          "diner reviews own completed reservation",
			p:             diner,
			reservationOf: dinerID,
			status:        reservation.StatusCompleted,
		},
		{
			name:          "someone else's reservation",
			p:             diner,
			reservationOf: uuid.New(),
			status:        reservation.StatusCompleted,
			errIs:         review.ErrNotReservationDiner,
		},
		{
			name:          "admins cannot review on a diner's behalf",
			p:             user.NewPrincipal(dinerID, user.RoleAdmin),
			reservationOf: dinerID,
			status:        reservation.StatusCompleted,
			errIs:         review.ErrNotReservationDiner,
		},
		{
			name:          "pending reservation",
			p:             diner,
			reservationOf: dinerID,
			status:        reservation.StatusPending,
			errIs:         review.ErrNotCompleted,
		},
		{
			name:          "confirmed reservation",
			p:             diner,
			reservationOf: dinerID,
			status:        reservation.StatusConfirmed,
			errIs:         review.ErrNotCompleted,
		},
		{
			name:          "cancelled reservation",
			p:             diner,
			reservationOf: dinerID,
			status:        reservation.StatusCancelled,
			errIs:         review.ErrNotCompleted,
		},
		{
			name:            "second review",
			p:               diner,
			reservationOf:   dinerID,
			status:          reservation.StatusCompleted,
			alreadyReviewed: true,
			errIs:           review.ErrAlreadyReviewed,
		},
		{
			// Ownership is checked before completion so a stranger probing a
			// pending reservation learns nothing about its state.
			name:          "ownership refused before completion",
			p:             diner,
			reservationOf: uuid.New(),
			status:        reservation.StatusPending,
			errIs:         review.ErrNotReservationDiner,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := review.CanCreate(c.p, c.reservationOf, c.status, c.alreadyReviewed)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestCanEditOrDelete(t *testing.T) {
	dinerID := uuid.New()

	assert.True(t, review.CanEditOrDelete(user.NewPrincipal(uuid.New(), user.RoleAdmin), dinerID))
	assert.True(t, review.CanEditOrDelete(user.NewPrincipal(dinerID, user.RoleDiner), dinerID))
	assert.False(t, review.CanEditOrDelete(user.NewPrincipal(uuid.New(), user.RoleDiner), dinerID))
	assert.False(t, review.CanEditOrDelete(user.NewPrincipal(uuid.New(), user.RoleOperator), dinerID))
}
