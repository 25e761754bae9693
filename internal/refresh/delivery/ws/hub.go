package ws

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"steaminvest/pkg/log"
)

// Hub fans refresh progress events out to every connected websocket client.
// All client-map access happens on the Run goroutine, so no lock is needed.
type Hub struct {
	l          log.Logger
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewHub creates a new progress hub. Call Run before registering its Handler.
func NewHub(l log.Logger) *Hub {
	return &Hub{
		l:          l,
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 64),
	}
}

// Run owns the client set. It exits when ctx is cancelled, closing every
// remaining connection.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for conn := range h.clients {
				conn.Close()
			}
			return

		case conn := <-h.register:
			h.clients[conn] = true
			h.l.Debugf(ctx, "ws.Hub: client connected, %d online", len(h.clients))

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.l.Debugf(ctx, "ws.Hub: client disconnected, %d online", len(h.clients))

		case message := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

// Broadcast marshals v and sends it to every connected client. Drops the
// message when the hub is backed up rather than stalling the refresh run.
func (h *Hub) Broadcast(ctx context.Context, v any) {
	message, err := json.Marshal(v)
	if err != nil {
		h.l.Errorf(ctx, "ws.Hub: marshal broadcast: %v", err)
		return
	}
	select {
	case h.broadcast <- message:
	default:
		h.l.Warnf(ctx, "ws.Hub: broadcast buffer full, dropping event")
	}
}

// Handler upgrades the request and keeps the connection registered until the
// client goes away. Inbound messages are discarded; the socket is push-only.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "ws.Hub: upgrade: %v", err)
		return
	}
	h.register <- conn

	go func() {
		defer func() {
			h.unregister <- conn
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}
