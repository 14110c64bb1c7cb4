package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vidboard/vidboard/internal/config"
	"github.com/vidboard/vidboard/internal/utils"
)

// OwnerIdentityKey is the gin context key holding the caller's identity.
const OwnerIdentityKey = "owner_identity"

// IdentityMiddleware resolves the caller identity from a bearer token minted
// by the external session provider. The token's email (or subject) claim is
// the opaque owner identity; requests without one are rejected before any
// persistence is touched.
func IdentityMiddleware(cfg *config.APIConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			unauthorized(c)
			return
		}

		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !parsed.Valid {
			unauthorized(c)
			return
		}

		identity := identityFromClaims(claims)
		if identity == "" {
			unauthorized(c)
			return
		}

		c.Set(OwnerIdentityKey, identity)

		ctx := utils.WithOwnerIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func identityFromClaims(claims jwt.MapClaims) string {
	if email, ok := claims["email"].(string); ok && email != "" {
		return email
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub
	}
	return ""
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":      utils.NewUnauthorizedError(),
		"request_id": c.GetString("request_id"),
		"timestamp":  time.Now().Format(time.RFC3339),
	})
	c.Abort()
}
