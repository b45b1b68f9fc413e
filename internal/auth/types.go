package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// lifetime of issued tokens
const tokenTTL = 7 * 24 * time.Hour

// gin context keys set by the middleware
const (
	ContextUserID  = "user_id"
	ContextEmail   = "user_email"
	ContextIsAdmin = "is_admin"
)

// represents JWT claims
type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
