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

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

const reservationViewQuery = `
	SELECT rv.id, rv.table_id, t.code, t.restaurant_id, rst.name, rst.owner_id,
	       rv.diner_id, u.email, rv.reserved_at, rv.status, rv.version,
	       rv.created_at, rv.updated_at
	FROM reservations rv
	JOIN tables t ON t.id = rv.table_id
	JOIN restaurants rst ON rst.id = t.restaurant_id
	JOIN users u ON u.id = rv.diner_id`

func (s *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row := s.pool.QueryRow(ctx, reservationViewQuery+` WHERE rv.id = $1`, id)
	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation by id", err)
	}
	return view, nil
}

func (s *ReservationReadStore) List(ctx context.Context, scope authz.Scope) ([]*queries.ReservationView, error) {
	q := reservationViewQuery
	args := []any{}
	switch {
	case scope.All:
	case scope.DinerID != nil:
		q += ` WHERE rv.diner_id = $1`
		args = append(args, pgconv.UUIDToPgtype(*scope.DinerID))
	case scope.OwnerID != nil:
		q += ` WHERE rst.owner_id = $1`
		args = append(args, pgconv.UUIDToPgtype(*scope.OwnerID))
	default:
		return []*queries.ReservationView{}, nil
	}
	q += ` ORDER BY rv.reserved_at DESC, rv.id DESC`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	result := make([]*queries.ReservationView, 0)
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view       queries.ReservationView
		ownerID    pgtype.UUID
		dinerID    pgtype.UUID
		reservedAt pgtype.Timestamptz
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.TableID, &view.TableCode, &view.RestaurantID, &view.RestaurantName, &ownerID,
		&dinerID, &view.DinerEmail, &reservedAt, &view.Status, &view.Version,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.RestaurantOwnerID = pgconv.UUIDPtrFromPgtype(ownerID)
	view.DinerID = uuid.UUID(dinerID.Bytes)
	view.ReservedAt = pgconv.TimeFromPgtype(reservedAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
