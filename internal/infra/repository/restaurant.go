package repository

import (
	"context"

	"tablebook/internal/domain/restaurant"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *restaurant.Restaurant) (int64, error) {
	const q = `
		INSERT INTO restaurants (name, address, phone, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, q,
		rest.Name().String(),
		rest.Address().String(),
		rest.Phone().String(),
		pgconv.UUIDPtrToPgtype(rest.OwnerID()),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("restaurant owner does not exist", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create restaurant", err)
	}
	return id, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, rest *restaurant.Restaurant) error {
	const q = `
		UPDATE restaurants
		SET name = $2, address = $3, phone = $4, owner_id = $5, updated_at = now()
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q,
		rest.ID(),
		rest.Name().String(),
		rest.Address().String(),
		rest.Phone().String(),
		pgconv.UUIDPtrToPgtype(rest.OwnerID()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update restaurant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("restaurant not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the restaurant, its tables, and any cancelled reservations
// under them in one transaction. A non-cancelled reservation still trips the
// foreign key on the table delete, which callers map back to the
// active-reservations refusal.
func (r *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			DELETE FROM reservations rv
			USING tables t
			WHERE rv.table_id = t.id AND t.restaurant_id = $1 AND rv.status = 'cancelled'`, id)
		if err != nil {
			return infra.WrapRepoErr("failed to purge cancelled reservations", err)
		}

		_, err = tx.Exec(ctx, `DELETE FROM tables WHERE restaurant_id = $1`, id)
		if err != nil {
			if pgconv.IsForeignKeyViolation(err) {
				return infra.WrapRepoErr("restaurant still referenced", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to delete restaurant tables", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
		if err != nil {
			return infra.WrapRepoErr("failed to delete restaurant", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("restaurant not found", nil, infra.KindNotFound)
		}
		return nil
	})
}
