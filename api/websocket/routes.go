package websocket

import (
	ws "codeberg.org/trigonal/backend/internal/websocket"
	"github.com/gin-gonic/gin"
)

// the feed authenticates through ?token= since browsers cannot set headers on upgrade requests
func RegisterRoutes(router *gin.RouterGroup, hub *ws.Hub, jwtSecret string, allowedOrigins []string, production bool) {
	router.GET("/admin/briefs/stream", StreamHandler(hub, jwtSecret, allowedOrigins, production))
}
