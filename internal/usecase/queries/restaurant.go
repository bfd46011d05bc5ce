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

// Read models (DTO for read side)
type RestaurantView struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	OwnerID   *uuid.UUID `json:"owner_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type RestaurantReadStore interface {
	FindByID(ctx context.Context, id int64) (*RestaurantView, error)
	List(ctx context.Context, scope authz.Scope) ([]*RestaurantView, error)
}

// RestaurantListCache caches the public (unscoped) restaurant listing.
// A miss is not an error; cache faults degrade to the read store.
type RestaurantListCache interface {
	Get(ctx context.Context) ([]*RestaurantView, bool)
	Set(ctx context.Context, items []*RestaurantView)
}

type RestaurantQueries interface {
	GetByID(ctx context.Context, id int64) (*RestaurantView, error)
	List(ctx context.Context, p user.Principal, mineOnly bool) ([]*RestaurantView, error)
}

type restaurantQueriesImpl struct {
	store RestaurantReadStore
	cache RestaurantListCache
}

func NewRestaurantQueries(store RestaurantReadStore, cache RestaurantListCache) RestaurantQueries {
	return &restaurantQueriesImpl{store: store, cache: cache}
}

// Restaurants are public reads; no access guard applies.
func (q *restaurantQueriesImpl) GetByID(ctx context.Context, id int64) (*RestaurantView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRestaurantNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *restaurantQueriesImpl) List(ctx context.Context, p user.Principal, mineOnly bool) ([]*RestaurantView, error) {
	scope := authz.RestaurantScope(p, mineOnly)

	if scope.All {
		if items, ok := q.cache.Get(ctx); ok {
			return items, nil
		}
	}

	items, err := q.store.List(ctx, scope)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if scope.All {
		q.cache.Set(ctx, items)
	}
	return items, nil
}
