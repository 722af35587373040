package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkholodov/storefront/internal/domain/errors"
	"github.com/mkholodov/storefront/internal/domain/model"
	pkgAuth "github.com/mkholodov/storefront/internal/pkg/auth"
)

const (
	// IdentityContextKey is a gin context key for the resolved caller identity.
	IdentityContextKey = "identity"
	authCookieName     = "storefront_token"
)

// IdentityResolver turns a bearer token into a caller identity. The role
// is resolved from the store on every request, never trusted from an old
// read.
type IdentityResolver interface {
	ParseToken(token string) (int64, error)
	Identity(ctx context.Context, userID int64) (model.Identity, error)
}

// AuthRequired ensures the caller is authenticated before accessing handler.
func AuthRequired(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := resolver.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		ident, err := resolver.Identity(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(IdentityContextKey, ident)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
