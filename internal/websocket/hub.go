// internal/websocket/hub.go
package websocket

import (
	"context"
	"fmt"
	"sync"

	"voltride-service/internal/pkg/jwt"
	"voltride-service/internal/pkg/session"

	"go.uber.org/zap"
)

// Hub fans out back-office activity events to connected admin clients.
// Every authenticated admin connection receives every event.
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	Register   chan *Client
	unregister chan *Client
	broadcast  chan *Event

	jwtManager     *jwt.Manager
	sessionManager *session.Manager
	logger         *zap.Logger
}

func NewHub(jwtManager *jwt.Manager, sessionManager *session.Manager, logger *zap.Logger) *Hub {
	return &Hub{
		clients:        make(map[*Client]bool),
		Register:       make(chan *Client),
		unregister:     make(chan *Client),
		broadcast:      make(chan *Event, 256),
		jwtManager:     jwtManager,
		sessionManager: sessionManager,
		logger:         logger,
	}
}

// AuthenticateClient verifies the admin token and checks the Redis session
// is still live before allowing the upgrade.
func (h *Hub) AuthenticateClient(ctx context.Context, token string) (*ClientAuth, error) {
	claims, err := h.jwtManager.Verify(token)
	if err != nil {
		return nil, err
	}

	sess, err := h.sessionManager.Get(ctx, claims.AdminID, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("session revoked or expired: %w", err)
	}

	return &ClientAuth{
		AdminID: claims.AdminID,
		JTI:     claims.ID,
		Email:   sess.Email,
		Role:    claims.Role,
	}, nil
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.Register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Publish queues an event for all connected admins. Non-blocking; events are
// dropped when the hub backlog is full.
func (h *Hub) Publish(event *Event) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("activity feed backlog full, dropping event",
			zap.String("type", event.Type))
	}
}

func (h *Hub) TotalClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("admin feed client connected",
		zap.Int64("admin_id", client.adminID),
		zap.Int("total", total))

	client.SendEvent(NewEvent(EventConnected, map[string]interface{}{
		"admin_id": client.adminID,
		"email":    client.email,
		"role":     client.role,
	}))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		client.Close()

		h.logger.Info("admin feed client disconnected",
			zap.Int64("admin_id", client.adminID),
			zap.Int("total", len(h.clients)))
	}
}

func (h *Hub) broadcastEvent(event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		client.SendEvent(event)
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
	}
	h.clients = make(map[*Client]bool)
}
