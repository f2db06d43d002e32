package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 64
	queryBacklog   = 8
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; rely on token auth.
		return true
	},
}

type chatNotification struct {
	sessionID string
	payload   []byte
}

// ChatHub tracks at most one chat socket per session.
type ChatHub struct {
	register   chan *chatClient
	unregister chan *chatClient
	notify     chan chatNotification
	clients    map[string]*chatClient
	done       chan struct{}
}

func NewChatHub() *ChatHub {
	return &ChatHub{
		register:   make(chan *chatClient),
		unregister: make(chan *chatClient),
		notify:     make(chan chatNotification, 256),
		clients:    make(map[string]*chatClient),
		done:       make(chan struct{}),
	}
}

// Run serves the hub until ctx is done.
func (h *ChatHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for id, client := range h.clients {
				client.conn.Close()
				delete(h.clients, id)
			}
			return
		case client := <-h.register:
			if existing, ok := h.clients[client.sessionID]; ok {
				existing.conn.Close()
			}
			h.clients[client.sessionID] = client
		case client := <-h.unregister:
			if stored, ok := h.clients[client.sessionID]; ok && stored == client {
				delete(h.clients, client.sessionID)
			}
		case msg := <-h.notify:
			if client, ok := h.clients[msg.sessionID]; ok {
				select {
				case client.send <- msg.payload:
				default:
					client.conn.Close()
					delete(h.clients, msg.sessionID)
				}
			}
		}
	}
}

// Notify pushes v to the session's socket, if one is open.
func (h *ChatHub) Notify(sessionID string, v any) {
	if h == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	select {
	case h.notify <- chatNotification{sessionID: sessionID, payload: data}:
	case <-h.done:
	}
}

func (h *ChatHub) add(c *chatClient) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *ChatHub) remove(c *chatClient) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
