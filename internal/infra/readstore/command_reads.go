package readstore

import (
	"context"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CommandReadStore serves the thin lookups commands need before writing.
type CommandReadStore struct {
	pool *pgxpool.Pool
}

func NewCommandReadStore(pool *pgxpool.Pool) *CommandReadStore {
	return &CommandReadStore{pool: pool}
}

func (s *CommandReadStore) RestaurantByID(ctx context.Context, id int64) (*commands.RestaurantSnapshot, error) {
	const q = `SELECT id, name, address, phone, owner_id FROM restaurants WHERE id = $1`
	var (
		snap    commands.RestaurantSnapshot
		ownerID pgtype.UUID
	)
	err := s.pool.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Name, &snap.Address, &snap.Phone, &ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get restaurant snapshot", err)
	}
	snap.OwnerID = pgconv.UUIDPtrFromPgtype(ownerID)
	return &snap, nil
}

func (s *CommandReadStore) TableByID(ctx context.Context, id int64) (*commands.TableSnapshot, error) {
	const q = `
		SELECT t.id, t.restaurant_id, t.code, t.capacity, r.owner_id
		FROM tables t
		JOIN restaurants r ON r.id = t.restaurant_id
		WHERE t.id = $1`
	var (
		snap    commands.TableSnapshot
		ownerID pgtype.UUID
	)
	err := s.pool.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.RestaurantID, &snap.Code, &snap.Capacity, &ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get table snapshot", err)
	}
	snap.RestaurantOwnerID = pgconv.UUIDPtrFromPgtype(ownerID)
	return &snap, nil
}

func (s *CommandReadStore) ReservationByID(ctx context.Context, id int64) (*commands.ReservationSnapshot, error) {
	const q = `
		SELECT rv.id, rv.table_id, rv.reserved_at, rv.diner_id, rv.status, rv.version,
		       t.restaurant_id, r.owner_id
		FROM reservations rv
		JOIN tables t ON t.id = rv.table_id
		JOIN restaurants r ON r.id = t.restaurant_id
		WHERE rv.id = $1`
	var (
		snap       commands.ReservationSnapshot
		reservedAt pgtype.Timestamptz
		dinerID    pgtype.UUID
		ownerID    pgtype.UUID
		status     string
	)
	err := s.pool.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.TableID, &reservedAt, &dinerID, &status, &snap.Version,
		&snap.RestaurantID, &ownerID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation snapshot", err)
	}
	snap.ReservedAt = pgconv.TimeFromPgtype(reservedAt)
	snap.DinerID = uuid.UUID(dinerID.Bytes)
	snap.Status = reservation.Status(status)
	snap.RestaurantOwnerID = pgconv.UUIDPtrFromPgtype(ownerID)
	return &snap, nil
}

func (s *CommandReadStore) ReviewByID(ctx context.Context, id int64) (*commands.ReviewSnapshot, error) {
	const q = `
		SELECT v.id, v.reservation_id, v.diner_id, v.rating, v.comment, r.owner_id
		FROM reviews v
		JOIN reservations rv ON rv.id = v.reservation_id
		JOIN tables t ON t.id = rv.table_id
		JOIN restaurants r ON r.id = t.restaurant_id
		WHERE v.id = $1`
	var (
		snap    commands.ReviewSnapshot
		dinerID pgtype.UUID
		comment pgtype.Text
		ownerID pgtype.UUID
	)
	err := s.pool.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.ReservationID, &dinerID, &snap.Rating, &comment, &ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review snapshot", err)
	}
	snap.DinerID = uuid.UUID(dinerID.Bytes)
	snap.Comment = pgconv.StringPtrFromPgtype(comment)
	snap.RestaurantOwnerID = pgconv.UUIDPtrFromPgtype(ownerID)
	return &snap, nil
}

// ActiveReservationExists is the advisory pre-check for slot availability.
// The partial unique index remains the arbiter under concurrency; this
// exists to give a clean error without burning an insert.
func (s *CommandReadStore) ActiveReservationExists(ctx context.Context, tableID int64, at time.Time, excludeID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE table_id = $1 AND reserved_at = $2 AND status <> 'cancelled' AND id <> $3
		)`
	var exists bool
	err := s.pool.QueryRow(ctx, q, tableID, pgconv.TimeToPgtype(at.UTC()), excludeID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot availability", err)
	}
	return exists, nil
}

// TableHasActiveReservations reports whether any non-cancelled reservation
// references the table. Completed reservations count: they are history the
// table row still anchors.
func (s *CommandReadStore) TableHasActiveReservations(ctx context.Context, tableID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE table_id = $1 AND status <> 'cancelled'
		)`
	var exists bool
	err := s.pool.QueryRow(ctx, q, tableID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check table reservations", err)
	}
	return exists, nil
}

func (s *CommandReadStore) RestaurantHasActiveReservations(ctx context.Context, restaurantID int64) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM reservations rv
			JOIN tables t ON t.id = rv.table_id
			WHERE t.restaurant_id = $1 AND rv.status <> 'cancelled'
		)`
	var exists bool
	err := s.pool.QueryRow(ctx, q, restaurantID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check restaurant reservations", err)
	}
	return exists, nil
}

func (s *CommandReadStore) ReviewExistsForReservation(ctx context.Context, reservationID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM reviews WHERE reservation_id = $1)`
	var exists bool
	err := s.pool.QueryRow(ctx, q, reservationID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
