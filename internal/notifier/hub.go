package notifier

import (
	"gigflow/internal/entity"
	"gigflow/internal/logger"
	"sync"
)

// Hub is the process-local registry of live connections, keyed by user id.
// A user may hold several connections at once (multiple tabs); every one of
// them receives each event. The hub carries no business state: a delivery
// to a user with no connections is silently dropped, the hire itself is
// already durable.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.UserId] == nil {
		h.clients[client.UserId] = make(map[*Client]struct{})
	}
	h.clients[client.UserId][client] = struct{}{}

	logger.Debug("ws client registered", "user_id", client.UserId, "connections", len(h.clients[client.UserId]))
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[client.UserId]
	if !ok {
		return
	}
	if _, ok := conns[client]; !ok {
		return
	}

	delete(conns, client)
	close(client.Send)
	if len(conns) == 0 {
		delete(h.clients, client.UserId)
	}

	logger.Debug("ws client unregistered", "user_id", client.UserId)
}

// NotifyHired fans the event out to every live connection of the user.
// Non-blocking: a connection with a full send buffer is skipped rather
// than stalling the caller.
func (h *Hub) NotifyHired(userId string, event *entity.HiredEvent) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.clients[userId]
	if !ok {
		logger.Debug("no live connection, hire event dropped", "user_id", userId)
		return nil
	}

	for client := range conns {
		select {
		case client.Send <- event:
		default:
			logger.Warn("ws send buffer full, event skipped", "user_id", userId)
		}
	}

	return nil
}

// ConnectionCount reports the number of live connections for a user.
func (h *Hub) ConnectionCount(userId string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userId])
}
