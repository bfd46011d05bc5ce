package queries

import (
	"context"
	"time"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

type TableView struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurant_id"`
	Code         string    `json:"code"`
	Capacity     int32     `json:"capacity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// RestaurantOwnerID is carried for access decisions, never serialized.
	RestaurantOwnerID *uuid.UUID `json:"-"`
}

type TableReadStore interface {
	FindByID(ctx context.Context, id int64) (*TableView, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]*TableView, error)
}

type TableQueries interface {
	GetByID(ctx context.Context, id int64) (*TableView, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]*TableView, error)
}

type tableQueriesImpl struct {
	store       TableReadStore
	restaurants RestaurantReadStore
}

func NewTableQueries(store TableReadStore, restaurants RestaurantReadStore) TableQueries {
	return &tableQueriesImpl{store: store, restaurants: restaurants}
}

// Tables are public reads (diners browse them to book).
func (q *tableQueriesImpl) GetByID(ctx context.Context, id int64) (*TableView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTableNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *tableQueriesImpl) ListByRestaurant(ctx context.Context, restaurantID int64) ([]*TableView, error) {
	// Listing under a missing restaurant is NotFound, not an empty list.
	if _, err := q.restaurants.FindByID(ctx, restaurantID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRestaurantNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items, err := q.store.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
