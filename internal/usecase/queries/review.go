package queries

import (
	"context"
	"time"

	"tablebook/internal/domain/authz"
	"tablebook/internal/domain/user"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReviewView struct {
	ID             int64     `json:"id"`
	ReservationID  int64     `json:"reservation_id"`
	RestaurantID   int64     `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	DinerID        uuid.UUID `json:"diner_id"`
	DinerEmail     string    `json:"diner_email"`
	Rating         int32     `json:"rating"`
	Comment        *string   `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// RestaurantOwnerID is carried for access decisions, never serialized.
	RestaurantOwnerID *uuid.UUID `json:"-"`
}

func (v *ReviewView) Ref() authz.ReviewRef {
	return authz.ReviewRef{
		DinerID:           v.DinerID,
		RestaurantOwnerID: v.RestaurantOwnerID,
	}
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReviewView, error)
	List(ctx context.Context, scope authz.Scope) ([]*ReviewView, error)
	ListByRestaurant(ctx context.Context, restaurantID int64, scope authz.Scope) ([]*ReviewView, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, p user.Principal, id int64) (*ReviewView, error)
	List(ctx context.Context, p user.Principal) ([]*ReviewView, error)
	ListByRestaurant(ctx context.Context, p user.Principal, restaurantID int64) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	store       ReviewReadStore
	restaurants RestaurantReadStore
}

func NewReviewQueries(store ReviewReadStore, restaurants RestaurantReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store, restaurants: restaurants}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, p user.Principal, id int64) (*ReviewView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReviewNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !authz.CanViewReview(p, view.Ref()) {
		return nil, errs.ErrAccessDenied
	}
	return view, nil
}

func (q *reviewQueriesImpl) List(ctx context.Context, p user.Principal) ([]*ReviewView, error) {
	items, err := q.store.List(ctx, authz.ReviewScope(p))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

// ListByRestaurant narrows List to one restaurant. The same role scope
// applies: admins see every review, operators only those of restaurants
// they own, diners only their own.
func (q *reviewQueriesImpl) ListByRestaurant(ctx context.Context, p user.Principal, restaurantID int64) ([]*ReviewView, error) {
	if _, err := q.restaurants.FindByID(ctx, restaurantID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRestaurantNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items, err := q.store.ListByRestaurant(ctx, restaurantID, authz.ReviewScope(p))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
