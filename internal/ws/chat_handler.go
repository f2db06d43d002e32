package ws

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaishnav/edutech_backend_v1/internal/middleware"
)

// ChatHandler serves the assistant socket for the authenticated session. The socket
// closes, and any pending reply is cancelled, when the session logs out.
func ChatHandler(hub *ChatHub, exchange ExchangeFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hub == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "realtime not available"})
			return
		}
		s := middleware.CurrentSession(c)
		if s == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		client := newChatClient(hub, conn, s.ID)
		unhook := s.OnClose(func() {
			cancel()
			conn.Close()
		})
		defer unhook()

		if !hub.add(client) {
			conn.Close()
			return
		}
		go client.writePump()
		go client.replyLoop(ctx, s, exchange)
		client.readPump()
	}
}
