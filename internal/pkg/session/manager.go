// internal/pkg/session/manager.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Data is the Redis-stored admin session record, keyed by admin ID + JTI.
type Data struct {
	JTI       string    `json:"jti"`
	AdminID   int64     `json:"admin_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	LoginAt   time.Time `json:"login_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Manager struct {
	client *redis.Client
}

func NewManager(client *redis.Client) *Manager {
	return &Manager{client: client}
}

// Create stores a new session in Redis with a TTL matching token expiry.
func (m *Manager) Create(ctx context.Context, s *Data) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := m.client.Set(ctx, m.key(s.AdminID, s.JTI), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get retrieves a live session; a missing key means the session was revoked
// or expired.
func (m *Manager) Get(ctx context.Context, adminID int64, jti string) (*Data, error) {
	raw, err := m.client.Get(ctx, m.key(adminID, jti)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("session not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var s Data
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

// Revoke deletes a session, ending it immediately.
func (m *Manager) Revoke(ctx context.Context, adminID int64, jti string) error {
	return m.client.Del(ctx, m.key(adminID, jti)).Err()
}

func (m *Manager) key(adminID int64, jti string) string {
	return fmt.Sprintf("session:admin:%d:%s", adminID, jti)
}
