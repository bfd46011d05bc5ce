package repository

import (
	"context"

	"tablebook/internal/domain/review"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

// Create relies on the unique constraint over reservation_id to keep reviews
// one-per-reservation under concurrent submissions.
func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (int64, error) {
	const q = `
		INSERT INTO reviews (reservation_id, diner_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, q,
		rev.ReservationID(),
		pgconv.UUIDToPgtype(rev.DinerID()),
		int32(rev.Rating().Value()),
		pgconv.StringPtrToPgtype(rev.Comment().Ptr()),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return 0, infra.WrapRepoErr("reservation already reviewed", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("reservation does not exist", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	const q = `
		UPDATE reviews
		SET rating = $2, comment = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, rev.ID(), int32(rev.Rating().Value()), pgconv.StringPtrToPgtype(rev.Comment().Ptr()))
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
