package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mhd-interiors/crm-console/internal/api/metrics"
	"github.com/mhd-interiors/crm-console/internal/push"
)

// WSHandler upgrades authenticated requests to websocket connections and
// parks them on the push hub.
type WSHandler struct {
	hub      *push.Hub
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

func NewWSHandler(hub *push.Hub, logger zerolog.Logger) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Auth happens via the bearer token, not the Origin header.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Subscribe handles GET /ws/notifications. The connection is write-only from
// the server's perspective; the read loop exists to detect disconnects.
func (h *WSHandler) Subscribe(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the error response.
		return nil
	}

	detach := h.hub.Subscribe(sess.UserID, conn)
	metrics.PushConnections.Inc()
	h.logger.Debug().Str("user_id", sess.UserID).Msg("push subscriber connected")

	defer func() {
		detach()
		metrics.PushConnections.Dec()
		h.logger.Debug().Str("user_id", sess.UserID).Msg("push subscriber disconnected")
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}
