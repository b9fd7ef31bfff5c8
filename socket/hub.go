package socket

import (
	"encoding/json"
	"sync"

	"contenthub/pkg/logger"
)

const (
	EventCreated = "CREATED" // A record was added to the collection
	EventUpdated = "UPDATED" // A record's fields changed
	EventDeleted = "DELETED" // A record was removed

	ResourceArticles = "articles"
	ResourceBlogs    = "blogs"
)

// Event is pushed to every client watching a resource collection after a
// successful create, update, or delete, so list views can refresh without
// polling. It is purely advisory: no history, no acks.
type Event struct {
	Type     string          `json:"type"`
	Resource string          `json:"resource"`
	ID       string          `json:"id"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

type Hub struct {
	Rooms      map[string]map[*Client]bool
	Broadcast  chan Event
	Register   chan *Client
	Unregister chan *Client
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Rooms:      make(map[string]map[*Client]bool),
		Broadcast:  make(chan Event),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			if h.Rooms[client.Resource] == nil {
				h.Rooms[client.Resource] = make(map[*Client]bool)
			}
			h.Rooms[client.Resource][client] = true
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.drop(client)

		case event := <-h.Broadcast:
			payload, err := json.Marshal(event)
			if err != nil {
				logger.Sugar.Errorf("Error marshalling broadcast event: %v", err)
				continue
			}

			// Collect recipients under the lock, send outside it.
			h.mu.Lock()
			clientsToSend := make([]*Client, 0, len(h.Rooms[event.Resource]))
			for client := range h.Rooms[event.Resource] {
				clientsToSend = append(clientsToSend, client)
			}
			h.mu.Unlock()

			for _, client := range clientsToSend {
				select {
				case client.Send <- payload:
				default:
					// If the send buffer is full, the client is lagging.
					// Drop it to keep the hub from blocking.
					logger.Sugar.Warnf("Client watching %s has a full send buffer. Dropping it.", client.Resource)
					h.drop(client)
				}
			}
		}
	}
}

// drop removes a client from its room and closes its send channel. Safe to
// call for a client that has already been dropped.
func (h *Hub) drop(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.Rooms[client.Resource][client]; !ok {
		return
	}
	delete(h.Rooms[client.Resource], client)
	close(client.Send)
	if len(h.Rooms[client.Resource]) == 0 {
		delete(h.Rooms, client.Resource)
		logger.Sugar.Infof("Closed empty room: %s", client.Resource)
	}
}
