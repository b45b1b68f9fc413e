package auth

import (
	"strings"

	"codeberg.org/trigonal/backend/internal/errors"
	"github.com/gin-gonic/gin"
)

// requires a valid bearer token carrying the admin claim
func AdminAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			errors.Unauthorized(c, "authorization header required")
			return
		}

		claims, err := ValidateJWT(secret, token)
		if err != nil {
			errors.Unauthorized(c, "invalid or expired token")
			return
		}

		if !claims.IsAdmin {
			errors.Forbidden(c, "admin access required")
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// validates a raw token (e.g. from a websocket query string) and requires the admin claim
func AuthorizeAdminToken(secret, token string) (*Claims, error) {
	claims, err := ValidateJWT(secret, token)
	if err != nil {
		return nil, err
	}

	if !claims.IsAdmin {
		return nil, ErrNotAdmin
	}

	return claims, nil
}

// extracts user_id from context after AdminAuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok
}

func setClaims(c *gin.Context, claims *Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextIsAdmin, claims.IsAdmin)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}

	return token, true
}
