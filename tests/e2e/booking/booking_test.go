//go:build e2e

package booking_test

import (
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"tablebook/internal/domain/user"
	"tablebook/internal/handler/dto/request"
	"tablebook/internal/handler/dto/response"
	"tablebook/tests/common/dbtest"
	"tablebook/tests/common/httptest"
	"tablebook/tests/e2e"
	"tablebook/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	reviewsURL      = "/api/reviews"
)

type BookingSuite struct {
	e2e.SharedSuite
	auth *helper.JWTTestHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.auth = helper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) slot(hoursAhead int) time.Time {
	return time.Now().UTC().Add(time.Duration(hoursAhead) * time.Hour).Truncate(time.Minute)
}

// =============================================================================
// TestCreateReservation
// =============================================================================

func (s *BookingSuite) TestCreateReservation() {
	s.Run("Normal case: diner books a free slot", func() {
		t := s.T()

		dinerID, token := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)

		reqBody := request.CreateReservationRequest{TableID: tableID, ReservedAt: s.slot(24)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.NotZero(t, created.ID)
		require.Equal(t, tableID, created.TableID)
		require.Equal(t, dinerID.String(), created.DinerID)
		require.Equal(t, "pending", created.Status)
		require.Equal(t, int64(1), created.Version)
	})

	s.Run("Error case: second booking for the same slot conflicts", func() {
		t := s.T()

		_, token1 := s.auth.CreateAndAuthenticate(t, "first@example.com", user.RoleDiner)
		_, token2 := s.auth.CreateAndAuthenticate(t, "second@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)

		at := s.slot(24)
		reqBody := request.CreateReservationRequest{TableID: tableID, ReservedAt: at}

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token1)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token2)
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())
	})

	s.Run("Race case: concurrent bookings for one slot yield a single winner", func() {
		t := s.T()

		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		at := s.slot(24)

		const diners = 8
		tokens := make([]string, diners)
		for i := range tokens {
			_, tokens[i] = s.auth.CreateAndAuthenticate(t, "racer"+strconv.Itoa(i)+"@example.com", user.RoleDiner)
		}

		codes := make(chan int, diners)
		var wg sync.WaitGroup
		for i := range diners {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				reqBody := request.CreateReservationRequest{TableID: tableID, ReservedAt: at}
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
				codes <- w.Code
			}(tokens[i])
		}
		wg.Wait()
		close(codes)

		created, conflicted := 0, 0
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "exactly one booking must win the slot")
		require.Equal(t, diners-1, conflicted, "every loser must see a conflict")
	})

	s.Run("Normal case: cancelled reservation releases the slot", func() {
		t := s.T()

		dinerID, _ := s.auth.CreateAndAuthenticate(t, "quitter@example.com", user.RoleDiner)
		_, token := s.auth.CreateAndAuthenticate(t, "taker@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)

		at := s.slot(24)
		dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, at, "cancelled")

		reqBody := request.CreateReservationRequest{TableID: tableID, ReservedAt: at}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: operator cannot book a table", func() {
		t := s.T()

		_, token := s.auth.CreateAndAuthenticate(t, "operator@example.com", user.RoleOperator)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)

		reqBody := request.CreateReservationRequest{TableID: tableID, ReservedAt: s.slot(24)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: booking an unknown table returns 404", func() {
		t := s.T()

		_, token := s.auth.CreateAndAuthenticate(t, "lost@example.com", user.RoleDiner)

		reqBody := request.CreateReservationRequest{TableID: 424242, ReservedAt: s.slot(24)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: request without token is rejected", func() {
		t := s.T()

		reqBody := request.CreateReservationRequest{TableID: 1, ReservedAt: s.slot(24)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: expired token is rejected", func() {
		t := s.T()

		dinerID := s.auth.CreateTestUser(t, "expired@example.com", user.RoleDiner)
		token := s.auth.CreateExpiredToken(t, dinerID, user.RoleDiner)

		reqBody := request.CreateReservationRequest{TableID: 1, ReservedAt: s.slot(24)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestStatusTransitions
// =============================================================================

func (s *BookingSuite) TestStatusTransitions() {
	s.Run("Normal case: owning operator confirms a pending reservation", func() {
		t := s.T()

		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		ownerID, ownerToken := s.auth.CreateAndAuthenticate(t, "owner@example.com", user.RoleOperator)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", &ownerID)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(24), "pending")

		version := int64(1)
		reqBody := request.TransitionReservationRequest{Status: "confirmed", Version: &version}

		url := reservationsURL + "/" + itoa(reservationID) + "/status"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, reqBody, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &updated)
		require.Equal(t, "confirmed", updated.Status)
		require.Equal(t, int64(2), updated.Version)
	})

	s.Run("Error case: diner cannot confirm a reservation", func() {
		t := s.T()

		dinerID, dinerToken := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(24), "pending")

		reqBody := request.TransitionReservationRequest{Status: "confirmed"}
		url := reservationsURL + "/" + itoa(reservationID) + "/status"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, reqBody, dinerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Normal case: admin cancels any reservation", func() {
		t := s.T()

		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		_, adminToken := s.auth.CreateAndAuthenticate(t, "admin@example.com", user.RoleAdmin)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(24), "pending")

		reqBody := request.TransitionReservationRequest{Status: "cancelled"}
		url := reservationsURL + "/" + itoa(reservationID) + "/status"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, reqBody, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &updated)
		require.Equal(t, "cancelled", updated.Status)
	})

	s.Run("Error case: pending cannot jump straight to completed", func() {
		t := s.T()

		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		ownerID, ownerToken := s.auth.CreateAndAuthenticate(t, "owner@example.com", user.RoleOperator)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", &ownerID)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(24), "pending")

		reqBody := request.TransitionReservationRequest{Status: "completed"}
		url := reservationsURL + "/" + itoa(reservationID) + "/status"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, reqBody, ownerToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: stale version is rejected", func() {
		t := s.T()

		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		ownerID, ownerToken := s.auth.CreateAndAuthenticate(t, "owner@example.com", user.RoleOperator)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", &ownerID)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(24), "pending")

		version := int64(1)
		confirm := request.TransitionReservationRequest{Status: "confirmed", Version: &version}
		url := reservationsURL + "/" + itoa(reservationID) + "/status"
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, confirm, ownerToken)
		require.Equal(t, http.StatusOK, w1.Code, w1.Body.String())

		// Same version again: the row is now on version 2
		complete := request.TransitionReservationRequest{Status: "completed", Version: &version}
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, complete, ownerToken)
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())
	})

	s.Run("Error case: operator of another restaurant is denied", func() {
		t := s.T()

		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		ownerID, _ := s.auth.CreateAndAuthenticate(t, "owner@example.com", user.RoleOperator)
		_, strangerToken := s.auth.CreateAndAuthenticate(t, "stranger@example.com", user.RoleOperator)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", &ownerID)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(24), "pending")

		reqBody := request.TransitionReservationRequest{Status: "confirmed"}
		url := reservationsURL + "/" + itoa(reservationID) + "/status"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, reqBody, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestReschedule
// =============================================================================

func (s *BookingSuite) TestReschedule() {
	s.Run("Normal case: admin moves a reservation to a free slot", func() {
		t := s.T()

		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		_, adminToken := s.auth.CreateAndAuthenticate(t, "admin@example.com", user.RoleAdmin)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(24), "pending")

		newAt := s.slot(48)
		reqBody := request.RescheduleReservationRequest{TableID: tableID, ReservedAt: newAt}

		url := reservationsURL + "/" + itoa(reservationID) + "/slot"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, reqBody, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &updated)
		require.True(t, updated.ReservedAt.Equal(newAt))
	})

	s.Run("Error case: rescheduling onto a held slot conflicts", func() {
		t := s.T()

		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		otherID, _ := s.auth.CreateAndAuthenticate(t, "other@example.com", user.RoleDiner)
		_, adminToken := s.auth.CreateAndAuthenticate(t, "admin@example.com", user.RoleAdmin)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)

		takenAt := s.slot(48)
		dbtest.CreateTestReservation(t, s.DB, tableID, otherID, takenAt, "confirmed")
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(24), "pending")

		reqBody := request.RescheduleReservationRequest{TableID: tableID, ReservedAt: takenAt}
		url := reservationsURL + "/" + itoa(reservationID) + "/slot"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, reqBody, adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: operators cannot reschedule, even their own", func() {
		t := s.T()

		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		ownerID, ownerToken := s.auth.CreateAndAuthenticate(t, "owner@example.com", user.RoleOperator)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", &ownerID)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(24), "pending")

		reqBody := request.RescheduleReservationRequest{TableID: tableID, ReservedAt: s.slot(48)}
		url := reservationsURL + "/" + itoa(reservationID) + "/slot"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, reqBody, ownerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestVisibility
// =============================================================================

func (s *BookingSuite) TestVisibility() {
	s.Run("Normal case: diner sees only own reservations in list", func() {
		t := s.T()

		dinerID, dinerToken := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		otherID, _ := s.auth.CreateAndAuthenticate(t, "other@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)

		dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(24), "pending")
		dbtest.CreateTestReservation(t, s.DB, tableID, otherID, s.slot(48), "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, dinerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body struct {
			Reservations []response.ReservationResponse `json:"reservations"`
		}
		httptest.DecodeResponseBody(t, w.Body, &body)
		require.Len(t, body.Reservations, 1)
		require.Equal(t, dinerID.String(), body.Reservations[0].DinerID)
	})

	s.Run("Error case: diner cannot fetch a stranger's reservation", func() {
		t := s.T()

		otherID, _ := s.auth.CreateAndAuthenticate(t, "other@example.com", user.RoleDiner)
		_, dinerToken := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, otherID, s.slot(24), "pending")

		url := reservationsURL + "/" + itoa(reservationID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, dinerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: missing reservation stays 404 for everyone", func() {
		t := s.T()

		_, dinerToken := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/424242", nil, dinerToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Normal case: operator sees reservations of own restaurants only", func() {
		t := s.T()

		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		ownerID, ownerToken := s.auth.CreateAndAuthenticate(t, "owner@example.com", user.RoleOperator)
		strangerID, _ := s.auth.CreateAndAuthenticate(t, "stranger@example.com", user.RoleOperator)

		ownRestaurant := dbtest.CreateTestRestaurant(t, s.DB, "Mine", &ownerID)
		foreignRestaurant := dbtest.CreateTestRestaurant(t, s.DB, "Theirs", &strangerID)
		ownTable := dbtest.CreateTestTable(t, s.DB, ownRestaurant, "T-1", 4)
		foreignTable := dbtest.CreateTestTable(t, s.DB, foreignRestaurant, "T-1", 4)

		dbtest.CreateTestReservation(t, s.DB, ownTable, dinerID, s.slot(24), "pending")
		dbtest.CreateTestReservation(t, s.DB, foreignTable, dinerID, s.slot(24), "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body struct {
			Reservations []response.ReservationResponse `json:"reservations"`
		}
		httptest.DecodeResponseBody(t, w.Body, &body)
		require.Len(t, body.Reservations, 1)
		require.Equal(t, ownRestaurant, body.Reservations[0].RestaurantID)
	})
}

// =============================================================================
// TestReviewFlow
// =============================================================================

func (s *BookingSuite) TestReviewFlow() {
	s.Run("Normal case: diner reviews own completed reservation", func() {
		t := s.T()

		dinerID, token := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(-24), "completed")

		reqBody := request.CreateReviewRequest{ReservationID: reservationID, Rating: 5, Comment: "Excellent service!"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReviewResponse
		httptest.DecodeResponseBody(t, w.Body, &created)

		comment := "Excellent service!"
		expected := &response.ReviewResponse{
			ReservationID:  reservationID,
			RestaurantID:   restaurantID,
			RestaurantName: "Chez E2E",
			DinerID:        dinerID.String(),
			DinerEmail:     "diner@example.com",
			Rating:         int32(5),
			Comment:        &comment,
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReviewResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("Review response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: second review for the same reservation conflicts", func() {
		t := s.T()

		dinerID, token := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(-24), "completed")

		reqBody := request.CreateReviewRequest{ReservationID: reservationID, Rating: 4}
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())
	})

	s.Run("Error case: reviewing a pending reservation is rejected", func() {
		t := s.T()

		dinerID, token := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(24), "pending")

		reqBody := request.CreateReviewRequest{ReservationID: reservationID, Rating: 5}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: another diner cannot review the reservation", func() {
		t := s.T()

		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		_, intruderToken := s.auth.CreateAndAuthenticate(t, "intruder@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		reservationID := dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, s.slot(-24), "completed")

		reqBody := request.CreateReviewRequest{ReservationID: reservationID, Rating: 1, Comment: "Never ate here"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, intruderToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Normal case: restaurant listing is scoped by role", func() {
		t := s.T()

		ownerID, ownerToken := s.auth.CreateAndAuthenticate(t, "owner@example.com", user.RoleOperator)
		dinerAID, dinerAToken := s.auth.CreateAndAuthenticate(t, "diner-a@example.com", user.RoleDiner)
		dinerBID, dinerBToken := s.auth.CreateAndAuthenticate(t, "diner-b@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", &ownerID)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)

		resA := dbtest.CreateTestReservation(t, s.DB, tableID, dinerAID, s.slot(-24), "completed")
		resB := dbtest.CreateTestReservation(t, s.DB, tableID, dinerBID, s.slot(-48), "completed")

		wA := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			request.CreateReviewRequest{ReservationID: resA, Rating: 5}, dinerAToken)
		require.Equal(t, http.StatusCreated, wA.Code, wA.Body.String())
		wB := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			request.CreateReviewRequest{ReservationID: resB, Rating: 2}, dinerBToken)
		require.Equal(t, http.StatusCreated, wB.Code, wB.Body.String())

		listURL := "/api/restaurants/" + itoa(restaurantID) + "/reviews"

		var body struct {
			Reviews []response.ReviewResponse `json:"reviews"`
		}

		// A diner only ever sees their own review of the restaurant.
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, dinerAToken)
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())
		httptest.DecodeResponseBody(t, lw.Body, &body)
		require.Len(t, body.Reviews, 1)
		require.Equal(t, dinerAID.String(), body.Reviews[0].DinerID)

		// The owning operator sees every review of their restaurant.
		lw = httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())
		httptest.DecodeResponseBody(t, lw.Body, &body)
		require.Len(t, body.Reviews, 2)
	})

	s.Run("Error case: anonymous callers cannot list restaurant reviews", func() {
		t := s.T()

		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		listURL := "/api/restaurants/" + itoa(restaurantID) + "/reviews"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
