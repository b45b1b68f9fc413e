package websocket

import (
	stderrors "errors"
	"time"

	"codeberg.org/trigonal/backend/internal/auth"
	"codeberg.org/trigonal/backend/internal/errors"
	"codeberg.org/trigonal/backend/internal/logger"
	ws "codeberg.org/trigonal/backend/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// bound for writing the close frame to a rejected connection
const closeWait = time.Second

// StreamHandler godoc
// @Summary Live feed of consultation briefs
// @Description Upgrades to a WebSocket that pushes brief_created and brief_updated events
// @Tags admin
// @Param token query string true "Admin JWT"
// @Success 101
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /api/admin/briefs/stream [get]
func StreamHandler(hub *ws.Hub, jwtSecret string, allowedOrigins []string, production bool) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     ws.NewOriginChecker(allowedOrigins, production),
	}

	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			errors.Unauthorized(c, "token query parameter required")
			return
		}

		claims, err := auth.AuthorizeAdminToken(jwtSecret, token)
		if err != nil {
			if stderrors.Is(err, auth.ErrNotAdmin) {
				errors.Forbidden(c, "admin access required")
				return
			}

			errors.Unauthorized(c, "invalid or expired token")
			return
		}

		if !hub.CanAcceptConnection(claims.UserID) {
			errors.TooManyRequests(c, "too many feed connections")
			return
		}

		clientID, err := ws.GenerateClientID()
		if err != nil {
			errors.InternalError(c, "failed to generate client ID", err)
			return
		}

		ipAddress := c.ClientIP()

		// upgrade writes its own error response on failure
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("failed to upgrade feed connection",
				"admin_id", claims.UserID,
				"ip", ipAddress,
				"error", err,
			)

			return
		}

		client := ws.NewClient(clientID, claims.UserID, ipAddress, conn, hub)
		if err := hub.Register(client); err != nil {
			logger.Warn("feed connection rejected after upgrade",
				"admin_id", claims.UserID,
				"ip", ipAddress,
				"error", err,
			)

			rejectConnection(conn, err)
			return
		}

		go client.WritePump()
		go client.ReadPump()

		logger.Info("feed connection established",
			"client_id", clientID,
			"admin_id", claims.UserID,
			"ip", ipAddress,
		)
	}
}

// sends a close frame explaining why an upgraded connection was refused
func rejectConnection(conn *websocket.Conn, err error) {
	code := websocket.CloseTryAgainLater
	if stderrors.Is(err, ws.ErrHubClosed) {
		code = websocket.CloseGoingAway
	}

	deadline := time.Now().Add(closeWait)
	msg := websocket.FormatCloseMessage(code, err.Error())

	conn.WriteControl(websocket.CloseMessage, msg, deadline) //nolint:errcheck,gosec // best-effort close frame
	conn.Close()                                             //nolint:errcheck,gosec // G104: rejected connection
}
