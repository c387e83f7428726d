// handlers/ws.go - Realtime Activity Stream
package handlers

import (
	"log"

	"idolyst/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade rejects plain HTTP requests on the websocket route.
func WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// ActivityStream pushes every newly recorded XP activity to the client
// until it disconnects.
// GET /ws/activity
func ActivityStream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		hub := services.GetActivityHub()
		if hub == nil {
			_ = conn.Close()
			return
		}

		events, unsubscribe := hub.Subscribe()
		defer unsubscribe()

		// Drain client frames so close messages are processed.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					unsubscribe()
					return
				}
			}
		}()

		for event := range events {
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("activity stream: client write failed: %v", err)
				return
			}
		}
	})
}
