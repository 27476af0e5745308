package orderController

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/cardapio-digital/restaurante-api/models"
)

// How long a feed client gets to accept a write before it is dropped.
const feedWriteTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans new orders out to connected back-office screens and the
// receipt-printing agent.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// GET /pedidos/feed
func (h *Hub) FeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}

// Broadcast pushes a created order to every connected client. Writes run off
// the caller's goroutine so a stalled feed client never delays checkout; the
// mutex keeps one writer per connection and deadlines bound each write.
// Connections that fail to write are dropped.
func (h *Hub) Broadcast(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	go func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for client := range h.clients {
			client.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
			if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
				client.Close()
				delete(h.clients, client)
			}
		}
	}()
}

func (h *Hub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
