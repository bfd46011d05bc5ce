package repository

import (
	"context"

	"tablebook/internal/domain/table"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TableRepository struct {
	pool *pgxpool.Pool
}

func NewTableRepository(pool *pgxpool.Pool) *TableRepository {
	return &TableRepository{pool: pool}
}

func (r *TableRepository) Create(ctx context.Context, t *table.Table) (int64, error) {
	const q = `
		INSERT INTO tables (restaurant_id, code, capacity)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, q, t.RestaurantID(), t.Code().String(), t.Capacity().Value()).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("restaurant does not exist", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create table", err)
	}
	return id, nil
}

func (r *TableRepository) Update(ctx context.Context, t *table.Table) error {
	const q = `
		UPDATE tables
		SET code = $2, capacity = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, t.ID(), t.Code().String(), t.Capacity().Value())
	if err != nil {
		return infra.WrapRepoErr("failed to update table", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("table not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the table together with its cancelled reservations, which
// are dead history once the table goes. Non-cancelled reservations still
// trip the foreign key, so a booking racing the delete keeps the row alive.
func (r *TableRepository) Delete(ctx context.Context, id int64) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM reservations WHERE table_id = $1 AND status = 'cancelled'`, id)
		if err != nil {
			return infra.WrapRepoErr("failed to purge cancelled reservations", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM tables WHERE id = $1`, id)
		if err != nil {
			if pgconv.IsForeignKeyViolation(err) {
				return infra.WrapRepoErr("table still referenced", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to delete table", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("table not found", nil, infra.KindNotFound)
		}
		return nil
	})
}
