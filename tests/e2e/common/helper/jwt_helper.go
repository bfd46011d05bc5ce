//go:build e2e

package helper

import (
	"testing"
	"time"

	"tablebook/internal/domain/user"
	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/jwt"
	"tablebook/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// JWTTestHelper mints tokens for principals created directly in the database.
// There is no login endpoint; identity is asserted by an upstream issuer.
type JWTTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, cfg: cfg}
}

func (h *JWTTestHelper) CreateTestUser(t *testing.T, email string, role user.Role) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestUser(t, h.pool, email, role.String())
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateAndAuthenticate inserts a user row and returns its id with a valid token.
func (h *JWTTestHelper) CreateAndAuthenticate(t *testing.T, email string, role user.Role) (uuid.UUID, string) {
	t.Helper()
	id := h.CreateTestUser(t, email, role)
	return id, h.GenerateToken(t, id, role)
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
