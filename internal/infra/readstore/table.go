package readstore

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TableReadStore struct {
	pool *pgxpool.Pool
}

func NewTableReadStore(pool *pgxpool.Pool) *TableReadStore {
	return &TableReadStore{pool: pool}
}

// Table views carry the owning restaurant's owner_id so callers can make
// access decisions without a second lookup.
const tableViewQuery = `
	SELECT t.id, t.restaurant_id, t.code, t.capacity, t.created_at, t.updated_at, r.owner_id
	FROM tables t
	JOIN restaurants r ON r.id = t.restaurant_id`

func (s *TableReadStore) FindByID(ctx context.Context, id int64) (*queries.TableView, error) {
	row := s.pool.QueryRow(ctx, tableViewQuery+` WHERE t.id = $1`, id)
	view, err := scanTableView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get table by id", err)
	}
	return view, nil
}

func (s *TableReadStore) ListByRestaurant(ctx context.Context, restaurantID int64) ([]*queries.TableView, error) {
	rows, err := s.pool.Query(ctx, tableViewQuery+` WHERE t.restaurant_id = $1 ORDER BY t.code`, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables by restaurant", err)
	}
	defer rows.Close()

	result := make([]*queries.TableView, 0)
	for rows.Next() {
		view, err := scanTableView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan table row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate table rows", err)
	}
	return result, nil
}

func scanTableView(row rowScanner) (*queries.TableView, error) {
	var (
		view      queries.TableView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
		ownerID   pgtype.UUID
	)
	if err := row.Scan(&view.ID, &view.RestaurantID, &view.Code, &view.Capacity, &createdAt, &updatedAt, &ownerID); err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	view.RestaurantOwnerID = pgconv.UUIDPtrFromPgtype(ownerID)
	return &view, nil
}
