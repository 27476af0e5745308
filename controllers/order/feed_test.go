package orderController

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardapio-digital/restaurante-api/models"
)

func startFeedServer(t *testing.T, hub *Hub) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/pedidos/feed", hub.FeedHandler)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/pedidos/feed"
}

func TestBroadcastDeliversOrderWithoutBlockingCaller(t *testing.T) {
	hub := NewHub()
	url := startFeedServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.clientCount() == 1 },
		time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		hub.Broadcast(models.Order{OrderRef: "ref-123", Status: models.OrderStatusPending})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked the calling goroutine")
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got models.Order
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "ref-123", got.OrderRef)
	assert.Equal(t, models.OrderStatusPending, got.Status)
}

func TestBroadcastDropsClosedClients(t *testing.T) {
	hub := NewHub()
	url := startFeedServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.clientCount() == 1 },
		time.Second, 10*time.Millisecond)

	conn.Close()
	hub.Broadcast(models.Order{OrderRef: "ref-456"})

	require.Eventually(t, func() bool { return hub.clientCount() == 0 },
		time.Second, 10*time.Millisecond)
}
