package readstore

import (
	"context"

	"tablebook/internal/domain/authz"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewReadStore struct {
	pool *pgxpool.Pool
}

func NewReviewReadStore(pool *pgxpool.Pool) *ReviewReadStore {
	return &ReviewReadStore{pool: pool}
}

const reviewViewQuery = `
	SELECT v.id, v.reservation_id, t.restaurant_id, rst.name, rst.owner_id,
	       v.diner_id, u.email, v.rating, v.comment, v.created_at, v.updated_at
	FROM reviews v
	JOIN reservations rv ON rv.id = v.reservation_id
	JOIN tables t ON t.id = rv.table_id
	JOIN restaurants rst ON rst.id = t.restaurant_id
	JOIN users u ON u.id = v.diner_id`

func (s *ReviewReadStore) FindByID(ctx context.Context, id int64) (*queries.ReviewView, error) {
	row := s.pool.QueryRow(ctx, reviewViewQuery+` WHERE v.id = $1`, id)
	view, err := scanReviewView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review by id", err)
	}
	return view, nil
}

func (s *ReviewReadStore) List(ctx context.Context, scope authz.Scope) ([]*queries.ReviewView, error) {
	q := reviewViewQuery
	args := []any{}
	switch {
	case scope.All:
	case scope.DinerID != nil:
		q += ` WHERE v.diner_id = $1`
		args = append(args, pgconv.UUIDToPgtype(*scope.DinerID))
	case scope.OwnerID != nil:
		q += ` WHERE rst.owner_id = $1`
		args = append(args, pgconv.UUIDToPgtype(*scope.OwnerID))
	default:
		return []*queries.ReviewView{}, nil
	}
	q += ` ORDER BY v.created_at DESC, v.id DESC`
	return s.queryViews(ctx, q, args...)
}

func (s *ReviewReadStore) ListByRestaurant(ctx context.Context, restaurantID int64, scope authz.Scope) ([]*queries.ReviewView, error) {
	q := reviewViewQuery + ` WHERE t.restaurant_id = $1`
	args := []any{restaurantID}
	switch {
	case scope.All:
	case scope.DinerID != nil:
		q += ` AND v.diner_id = $2`
		args = append(args, pgconv.UUIDToPgtype(*scope.DinerID))
	case scope.OwnerID != nil:
		q += ` AND rst.owner_id = $2`
		args = append(args, pgconv.UUIDToPgtype(*scope.OwnerID))
	default:
		return []*queries.ReviewView{}, nil
	}
	q += ` ORDER BY v.created_at DESC, v.id DESC`
	return s.queryViews(ctx, q, args...)
}

func (s *ReviewReadStore) queryViews(ctx context.Context, q string, args ...any) ([]*queries.ReviewView, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	result := make([]*queries.ReviewView, 0)
	for rows.Next() {
		view, err := scanReviewView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return result, nil
}

func scanReviewView(row rowScanner) (*queries.ReviewView, error) {
	var (
		view      queries.ReviewView
		ownerID   pgtype.UUID
		dinerID   pgtype.UUID
		comment   pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.ReservationID, &view.RestaurantID, &view.RestaurantName, &ownerID,
		&dinerID, &view.DinerEmail, &view.Rating, &comment, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.RestaurantOwnerID = pgconv.UUIDPtrFromPgtype(ownerID)
	view.DinerID = uuid.UUID(dinerID.Bytes)
	view.Comment = pgconv.StringPtrFromPgtype(comment)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
