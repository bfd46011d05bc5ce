package readstore

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserReadStore resolves principal ids to contact details for notification
// delivery. It is the only place infra reads the users table directly.
type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (s *UserReadStore) Resolve(ctx context.Context, id uuid.UUID) (*commands.PrincipalContact, error) {
	const q = `SELECT email, role FROM users WHERE id = $1`
	var contact commands.PrincipalContact
	err := s.pool.QueryRow(ctx, q, pgconv.UUIDToPgtype(id)).Scan(&contact.Email, &contact.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to resolve principal contact", err)
	}
	return &contact, nil
}
