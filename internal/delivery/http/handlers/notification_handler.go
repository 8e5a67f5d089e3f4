package handlers

import (
	"log"

	"video-mcq/internal/infrastructure/notify"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	registry *notify.Registry
}

func NewNotificationHandler(registry *notify.Registry) *NotificationHandler {
	return &NotificationHandler{
		registry: registry,
	}
}

// Upgrade rejects plain HTTP requests on the websocket endpoint.
func (h *NotificationHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Serve registers the connection for broadcasts and holds it open
// until the client disconnects. Inbound frames are drained and ignored.
func (h *NotificationHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		h.registry.Add(conn)
		defer h.registry.Remove(conn)

		welcome := []byte(`{"message":"Connected to notification service"}`)
		if err := conn.WriteMessage(websocket.TextMessage, welcome); err != nil {
			log.Printf("WARN: welcome message could not be sent: %v", err)
			return
		}

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	})
}
