package broadcast

import (
	"net/http"
	"sync"

	"github.com/MehmetFatih-Mvc/zirveclub-nginx/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// message is the wire envelope sent to every listener.
type message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub fans user updates out to every connected websocket client, all
// listeners, not just the owner of the updated user.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// Mirrors the permissive CORS stance of the HTTP layer.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle upgrades an HTTP request to a websocket and keeps the connection
// registered until the peer goes away.
func (h *Hub) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
	zap.L().Info("websocket client connected")

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
			zap.L().Info("websocket client disconnected")
		}()
		for {
			// Clients never send anything meaningful; read only to detect close.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// BroadcastUserUpdate implements services.Broadcaster.
func (h *Hub) BroadcastUserUpdate(update services.UserUpdate) {
	h.broadcast(message{Event: "userUpdate", Data: update})
}

func (h *Hub) broadcast(msg message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
