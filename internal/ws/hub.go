// Package ws pushes ledger change notifications to connected websocket
// clients. The hub fans one event out to every subscriber; a client that
// cannot keep up is dropped rather than blocking the rest.
package ws

import (
	"encoding/json"
	"sync"

	"finledger/internal/domain"
	"finledger/internal/logger"
)

// Event is one ledger change as it goes over the wire.
type Event struct {
	Event       string              `json:"event"` // "added", "updated", "deleted"
	Transaction *domain.Transaction `json:"transaction,omitempty"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	logger.Debug("ws client registered", "clients", h.Len())
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends ev to every connected client. Clients with a full send
// buffer are disconnected.
func (h *Hub) Broadcast(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		logger.Error("ws marshal event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			delete(h.clients, c)
			close(c.send)
		}
	}
}
