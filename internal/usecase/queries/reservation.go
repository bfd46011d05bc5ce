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

type ReservationView struct {
	ID             int64     `json:"id"`
	TableID        int64     `json:"table_id"`
	TableCode      string    `json:"table_code"`
	RestaurantID   int64     `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	DinerID        uuid.UUID `json:"diner_id"`
	DinerEmail     string    `json:"diner_email"`
	ReservedAt     time.Time `json:"reserved_at"`
	Status         string    `json:"status"`
	Version        int64     `json:"version"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// RestaurantOwnerID is carried for access decisions, never serialized.
	RestaurantOwnerID *uuid.UUID `json:"-"`
}

func (v *ReservationView) Ref() authz.ReservationRef {
	return authz.ReservationRef{
		DinerID:           v.DinerID,
		RestaurantOwnerID: v.RestaurantOwnerID,
	}
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context, scope authz.Scope) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, p user.Principal, id int64) (*ReservationView, error)
	List(ctx context.Context, p user.Principal) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// GetByID loads first and guards second: absence yields NotFound, an
// existing but invisible reservation yields AccessDenied, in that order.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, p user.Principal, id int64) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !authz.CanViewReservation(p, view.Ref()) {
		return nil, errs.ErrAccessDenied
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, p user.Principal) ([]*ReservationView, error) {
	items, err := q.store.List(ctx, authz.ReservationScope(p))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
