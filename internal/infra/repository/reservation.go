package repository

import (
	"context"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// Create relies on the partial unique index over (table_id, reserved_at)
// for non-cancelled rows: two diners racing for the same slot produce one
// insert and one duplicate-key error.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	const q = `
		INSERT INTO reservations (table_id, reserved_at, diner_id, status, version)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, q,
		res.TableID(),
		pgconv.TimeToPgtype(res.At()),
		pgconv.UUIDToPgtype(res.DinerID()),
		res.Status().String(),
		res.Version(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return 0, infra.WrapRepoErr("slot already reserved", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("table does not exist", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

// UpdateStatus writes only when the stored version matches expectedVersion.
// A zero-row update on an existing row means a concurrent writer got there
// first, reported as KindStaleWrite.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, to reservation.Status, expectedVersion int64) error {
	const q = `
		UPDATE reservations
		SET status = $2, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $3`
	tag, err := r.pool.Exec(ctx, q, id, to.String(), expectedVersion)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id)
	}
	return nil
}

func (r *ReservationRepository) UpdateSlot(ctx context.Context, id int64, slot reservation.Slot, expectedVersion int64) error {
	const q = `
		UPDATE reservations
		SET table_id = $2, reserved_at = $3, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $4`
	tag, err := r.pool.Exec(ctx, q, id, slot.TableID(), pgconv.TimeToPgtype(slot.At()), expectedVersion)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("slot already reserved", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("table does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to update reservation slot", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id)
	}
	return nil
}

// Delete is a hard delete; the reservation's review, if any, goes with it.
func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM reviews WHERE reservation_id = $1`, id)
		if err != nil {
			return infra.WrapRepoErr("failed to delete reservation review", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
		if err != nil {
			return infra.WrapRepoErr("failed to delete reservation", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
		}
		return nil
	})
}

// classifyMiss distinguishes a vanished row from a version mismatch after a
// zero-row optimistic update.
func (r *ReservationRepository) classifyMiss(ctx context.Context, id int64) error {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return infra.WrapRepoErr("failed to check reservation existence", err)
	}
	if !exists {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("reservation version mismatch", nil, infra.KindStaleWrite)
}
