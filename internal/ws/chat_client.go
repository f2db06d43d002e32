package ws

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vaishnav/edutech_backend_v1/internal/models"
	"github.com/vaishnav/edutech_backend_v1/internal/session"
)

// ExchangeFunc records text as the user's message and returns the bot reply.
type ExchangeFunc func(ctx context.Context, s *session.Session, text string) (models.ChatMessage, error)

type inbound struct {
	Message string `json:"message"`
}

type errorFrame struct {
	Error string `json:"error"`
}

type chatClient struct {
	hub       *ChatHub
	conn      *websocket.Conn
	send      chan []byte
	queries   chan string
	done      chan struct{}
	sessionID string
}

func newChatClient(hub *ChatHub, conn *websocket.Conn, sessionID string) *chatClient {
	return &chatClient{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, sendBufferSize),
		queries:   make(chan string, queryBacklog),
		done:      make(chan struct{}),
		sessionID: sessionID,
	}
}

func (c *chatClient) readPump() {
	defer func() {
		close(c.done)
		close(c.queries)
		c.hub.remove(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			break
		}
		var in inbound
		if err := json.Unmarshal(data, &in); err != nil {
			// plain text frames are accepted as the message itself
			in.Message = string(data)
		}
		if strings.TrimSpace(in.Message) == "" {
			c.push(errorFrame{Error: "message is required"})
			continue
		}
		select {
		case c.queries <- in.Message:
		default:
			c.push(errorFrame{Error: "too many pending messages"})
		}
	}
}

// replyLoop answers queries in order. Cancelling ctx abandons the pending reply.
func (c *chatClient) replyLoop(ctx context.Context, s *session.Session, exchange ExchangeFunc) {
	for text := range c.queries {
		msg, err := exchange(ctx, s, text)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			c.push(errorFrame{Error: err.Error()})
			continue
		}
		c.push(msg)
	}
}

func (c *chatClient) push(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	case <-c.done:
	default:
		// a client this far behind is dropped
		c.conn.Close()
	}
}

func (c *chatClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			if _, err := w.Write(msg); err != nil {
				return
			}
			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
