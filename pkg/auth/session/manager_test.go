package session

import (
	"context"
	"testing"
	"time"

	"github.com/quickkart/quickkart-backend/pkg/config"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(config.JWTConfig{Secret: "s", Issuer: "i", ExpirationMinutes: 30})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return m
}

func TestManagerRegisterAndCheck(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	id := NewAccessID()
	if err := m.Register(ctx, id); err != nil {
		t.Fatalf("register: %v", err)
	}

	ok, err := m.HasSession(ctx, id)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !ok {
		t.Fatal("expected session to be active")
	}

	ok, err = m.HasSession(ctx, NewAccessID())
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("unknown access id must not have a session")
	}
}

func TestManagerRevoke(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	id := NewAccessID()
	if err := m.Register(ctx, id); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := m.Revoke(ctx, id); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	ok, err := m.HasSession(ctx, id)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("revoked session must not be active")
	}
}

func TestManagerExpiresSessions(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	id := NewAccessID()
	if err := m.Register(ctx, id); err != nil {
		t.Fatalf("register: %v", err)
	}

	m.now = func() time.Time { return time.Now().Add(time.Hour) }

	ok, err := m.HasSession(ctx, id)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("expired session must not be active")
	}
}

func TestManagerRejectsBlankID(t *testing.T) {
	m := newTestManager(t)
	if err := m.Register(context.Background(), "  "); err == nil {
		t.Fatal("expected blank access id to be rejected")
	}
	if _, err := m.HasSession(context.Background(), ""); err == nil {
		t.Fatal("expected blank access id to be rejected")
	}
}
