package readstore

import (
	"context"

	"tablebook/internal/domain/authz"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RestaurantReadStore struct {
	pool *pgxpool.Pool
}

func NewRestaurantReadStore(pool *pgxpool.Pool) *RestaurantReadStore {
	return &RestaurantReadStore{pool: pool}
}

const restaurantViewColumns = `id, name, address, phone, owner_id, created_at, updated_at`

func (r *RestaurantReadStore) FindByID(ctx context.Context, id int64) (*queries.RestaurantView, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+restaurantViewColumns+` FROM restaurants WHERE id = $1`, id)
	view, err := scanRestaurantView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get restaurant by id", err)
	}
	return view, nil
}

func (r *RestaurantReadStore) List(ctx context.Context, scope authz.Scope) ([]*queries.RestaurantView, error) {
	q := `SELECT ` + restaurantViewColumns + ` FROM restaurants`
	args := []any{}
	switch {
	case scope.All:
	case scope.OwnerID != nil:
		q += ` WHERE owner_id = $1`
		args = append(args, pgconv.UUIDToPgtype(*scope.OwnerID))
	default:
		return []*queries.RestaurantView{}, nil
	}
	q += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurants", err)
	}
	defer rows.Close()

	result := make([]*queries.RestaurantView, 0)
	for rows.Next() {
		view, err := scanRestaurantView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan restaurant row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate restaurant rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurantView(row rowScanner) (*queries.RestaurantView, error) {
	var (
		view      queries.RestaurantView
		ownerID   pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.Name, &view.Address, &view.Phone, &ownerID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	view.OwnerID = pgconv.UUIDPtrFromPgtype(ownerID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
