package websocket

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"slices"

	"codeberg.org/trigonal/backend/internal/logger"
)

// returns an upgrader origin check bound to the service's CORS origins
func NewOriginChecker(allowedOrigins []string, production bool) func(r *http.Request) bool {
	allowed := slices.Clone(allowedOrigins)

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")

		if origin == "" {
			// non-browser clients (curl, scripts) send no origin
			if !production {
				return true
			}

			logger.Warn("websocket connection with no origin header")
			return false
		}

		if slices.Contains(allowed, origin) {
			return true
		}

		logger.Warn("websocket origin rejected - not in allowed origins",
			"origin", origin,
			"allowed_origins", allowed,
		)

		return false
	}
}

func GenerateClientID() (string, error) {
	bytes := make([]byte, 16)

	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}
