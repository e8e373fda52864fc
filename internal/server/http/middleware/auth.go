package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/rushrr/courier/internal/pkg/auth"
)

const (
	// ShopContextKey is a gin context key for the authenticated shop domain.
	ShopContextKey = "shop"
	adminKeyHeader = "X-Admin-Key"
)

// TokenParser resolves a bearer token to the shop it was issued for.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// ShopAuth ensures the request carries a valid shop session token.
func ShopAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortJSON(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		shop, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				abortJSON(c, http.StatusUnauthorized, "Authentication required")
				return
			}
			abortJSON(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Set(ShopContextKey, shop)
		c.Next()
	}
}

// AdminKey guards operator endpoints with the configured admin key.
func AdminKey(verifier pkgAuth.KeyVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := verifier.Verify(c.GetHeader(adminKeyHeader))
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, pkgAuth.ErrAdminDisabled):
			abortJSON(c, http.StatusServiceUnavailable, "Admin access is not configured")
		default:
			abortJSON(c, http.StatusUnauthorized, "Invalid admin key")
		}
	}
}

// CurrentShop returns the shop stored by ShopAuth.
func CurrentShop(c *gin.Context) string {
	return c.GetString(ShopContextKey)
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

func abortJSON(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}
