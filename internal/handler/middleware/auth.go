package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"tablebook/internal/domain/user"
	"tablebook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxPrincipalKey = "principal"

type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth validates the bearer token and places the resulting Principal
// in the request context. Tokens are minted elsewhere; this service only
// verifies them.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		ident, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxPrincipalKey, user.Principal{ID: ident.PrincipalID, Role: ident.Role})
		c.Set("jwt_claims", map[string]any{
			"user_id": ident.PrincipalID.String(),
			"role":    ident.Role.String(),
		})
		c.Next()
	}
}

// OptionalAuth authenticates the request if a valid token is present, but
// never aborts. Public routes use it so role-aware filters can still apply.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}
		if token == "" {
			c.Next()
			return
		}

		ident, err := m.tokens.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxPrincipalKey, user.Principal{ID: ident.PrincipalID, Role: ident.Role})
		c.Set("jwt_claims", map[string]any{
			"user_id": ident.PrincipalID.String(),
			"role":    ident.Role.String(),
		})
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (user.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return user.Principal{}, false
	}
	p, ok := v.(user.Principal)
	return p, ok
}
