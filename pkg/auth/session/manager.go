package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quickkart/quickkart-backend/pkg/config"
)

// Manager tracks which access token IDs (jti) belong to a live session. The
// register lives in process memory and dies with it, matching the rest of the
// session state.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	ttl      time.Duration
	now      func() time.Time
}

// AccessSessionChecker exposes the read-only surface needed by middleware.
type AccessSessionChecker interface {
	HasSession(ctx context.Context, accessID string) (bool, error)
}

// NewManager constructs an in-memory session register sized by the JWT TTL.
func NewManager(cfg config.JWTConfig) (*Manager, error) {
	ttl := cfg.AccessTokenTTL()
	if ttl <= 0 {
		return nil, fmt.Errorf("access token ttl must be positive")
	}
	return &Manager{
		sessions: make(map[string]time.Time),
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// Register records the access ID as an active session.
func (m *Manager) Register(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return fmt.Errorf("access id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[accessID] = m.now().Add(m.ttl)
	return nil
}

// Revoke deletes the session tied to the access identifier.
func (m *Manager) Revoke(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return fmt.Errorf("access id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, accessID)
	return nil
}

// HasSession reports whether the provided access ID still has an active session.
func (m *Manager) HasSession(ctx context.Context, accessID string) (bool, error) {
	if strings.TrimSpace(accessID) == "" {
		return false, fmt.Errorf("access id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, ok := m.sessions[accessID]
	if !ok {
		return false, nil
	}
	if m.now().After(expiry) {
		delete(m.sessions, accessID)
		return false, nil
	}
	return true, nil
}

// NewAccessID produces a stable identifier used as the JWT jti/session key.
func NewAccessID() string {
	return uuid.NewString()
}
