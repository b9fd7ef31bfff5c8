package socket

import (
	"net/http"
	"time"

	"contenthub/pkg/logger"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CheckOrigin allows connections from the browser front-end dev server
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Client struct {
	Hub      *Hub
	Conn     *websocket.Conn
	Resource string
	Send     chan []byte
}

// ServeWs upgrades the HTTP request to a WebSocket subscription on a single
// resource collection, named by the "resource" query parameter.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	resource := r.URL.Query().Get("resource")
	if resource != ResourceArticles && resource != ResourceBlogs {
		http.Error(w, "Unknown resource", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Sugar.Error(err)
		return
	}

	client := &Client{
		Hub:      hub,
		Conn:     conn,
		Resource: resource,
		Send:     make(chan []byte, 256),
	}
	client.Hub.Register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()

	// Subscribers never send application messages; the read loop only drains
	// control frames and notices the peer going away.
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Sugar.Errorf("error: %v", err)
			}
			break
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second) // Send ping every 30s
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-c.Send:
			if !ok {
				// The hub dropped us; closing the connection also ends readPump.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				c.Conn.Close()
				return
			}
			c.Conn.WriteMessage(websocket.TextMessage, message)
		case <-ticker.C:
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return // Connection is dead
			}
		}
	}
}
