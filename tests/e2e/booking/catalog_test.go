//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tablebook/internal/domain/user"
	"tablebook/internal/handler/dto/request"
	"tablebook/tests/common/dbtest"
	"tablebook/tests/common/httptest"
	"tablebook/tests/e2e"
	"tablebook/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	restaurantsURL = "/api/restaurants"
	tablesURL      = "/api/tables"
)

// CatalogSuite covers the restaurant/table management surface, in
// particular the deletion policy around reservation history.
type CatalogSuite struct {
	e2e.SharedSuite
	auth *helper.JWTTestHelper
}

func (s *CatalogSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.auth = helper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) countRows(query string, args ...any) int {
	var n int
	err := s.DB.QueryRow(context.Background(), query, args...).Scan(&n)
	s.Require().NoError(err)
	return n
}

func (s *CatalogSuite) TestDeleteRestaurant() {
	s.Run("Normal case: deleting a restaurant removes its tables and cancelled history", func() {
		t := s.T()

		_, adminToken := s.auth.CreateAndAuthenticate(t, "admin@example.com", user.RoleAdmin)
		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Winding Down", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		dbtest.CreateTestTable(t, s.DB, restaurantID, "T-2", 2)
		dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, time.Now().UTC().Add(24*time.Hour), "cancelled")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, restaurantsURL+"/"+itoa(restaurantID), nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Zero(t, s.countRows(`SELECT count(*) FROM restaurants WHERE id = $1`, restaurantID))
		require.Zero(t, s.countRows(`SELECT count(*) FROM tables WHERE restaurant_id = $1`, restaurantID))
		require.Zero(t, s.countRows(`SELECT count(*) FROM reservations WHERE table_id = $1`, tableID))
	})

	s.Run("Error case: completed reservations keep blocking restaurant deletion", func() {
		t := s.T()

		_, adminToken := s.auth.CreateAndAuthenticate(t, "admin@example.com", user.RoleAdmin)
		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Busy Place", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, time.Now().UTC().Add(-24*time.Hour), "completed")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, restaurantsURL+"/"+itoa(restaurantID), nil, adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Equal(t, 1, s.countRows(`SELECT count(*) FROM restaurants WHERE id = $1`, restaurantID))
	})
}

func (s *CatalogSuite) TestDeleteTable() {
	s.Run("Normal case: deleting a table purges its cancelled reservations", func() {
		t := s.T()

		_, adminToken := s.auth.CreateAndAuthenticate(t, "admin@example.com", user.RoleAdmin)
		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, time.Now().UTC().Add(24*time.Hour), "cancelled")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, tablesURL+"/"+itoa(tableID), nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Zero(t, s.countRows(`SELECT count(*) FROM reservations WHERE table_id = $1`, tableID))
	})

	s.Run("Error case: completed reservations keep blocking table deletion", func() {
		t := s.T()

		_, adminToken := s.auth.CreateAndAuthenticate(t, "admin@example.com", user.RoleAdmin)
		dinerID, _ := s.auth.CreateAndAuthenticate(t, "diner@example.com", user.RoleDiner)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)
		tableID := dbtest.CreateTestTable(t, s.DB, restaurantID, "T-1", 4)
		dbtest.CreateTestReservation(t, s.DB, tableID, dinerID, time.Now().UTC().Add(-24*time.Hour), "completed")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, tablesURL+"/"+itoa(tableID), nil, adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Equal(t, 1, s.countRows(`SELECT count(*) FROM tables WHERE id = $1`, tableID))
	})
}

func (s *CatalogSuite) TestCreateTable() {
	s.Run("Normal case: duplicate table codes within a restaurant are tolerated", func() {
		t := s.T()

		_, adminToken := s.auth.CreateAndAuthenticate(t, "admin@example.com", user.RoleAdmin)
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Chez E2E", nil)

		reqBody := request.CreateTableRequest{RestaurantID: restaurantID, Code: "T-1", Capacity: 4}
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, tablesURL, reqBody, adminToken)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, tablesURL, reqBody, adminToken)
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())

		require.Equal(t, 2, s.countRows(`SELECT count(*) FROM tables WHERE restaurant_id = $1 AND code = $2`, restaurantID, "T-1"))
	})
}
