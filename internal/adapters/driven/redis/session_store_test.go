package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/campuslabs/askdoc-core/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

// setupTestRedis creates a miniredis instance and a client against it
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, mr, func() {
		client.Close()
		mr.Close()
	}
}

// createTestSession creates a test session with default values
func createTestSession(userID string) *domain.Session {
	return &domain.Session{
		ID:           "session-123",
		UserID:       userID,
		Token:        "token-abc",
		RefreshToken: "refresh-xyz",
		ExpiresAt:    time.Now().Add(24 * time.Hour),
		CreatedAt:    time.Now(),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewSessionStore(client)
	ctx := context.Background()
	session := createTestSession("user-1")

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error saving session: %v", err)
	}

	retrieved, err := store.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("failed to retrieve saved session: %v", err)
	}

	if retrieved.ID != session.ID {
		t.Errorf("expected ID %s, got %s", session.ID, retrieved.ID)
	}
	if retrieved.UserID != session.UserID {
		t.Errorf("expected UserID %s, got %s", session.UserID, retrieved.UserID)
	}
	if retrieved.Token != session.Token {
		t.Errorf("expected Token %s, got %s", session.Token, retrieved.Token)
	}
}

func TestSessionStore_Save_ExpiredSession(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := createTestSession("user-1")
	session.ExpiresAt = time.Now().Add(-time.Hour)

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Expired sessions are never written
	if _, err := store.Get(ctx, session.ID); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionStore_Get_NotFound(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "missing")
	if err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionStore_GetByRefreshToken(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewSessionStore(client)
	ctx := context.Background()
	session := createTestSession("user-1")

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	retrieved, err := store.GetByRefreshToken(ctx, session.RefreshToken)
	if err != nil {
		t.Fatalf("failed to get session by refresh token: %v", err)
	}
	if retrieved.ID != session.ID {
		t.Errorf("expected ID %s, got %s", session.ID, retrieved.ID)
	}

	if _, err := store.GetByRefreshToken(ctx, "unknown"); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound for unknown refresh token, got %v", err)
	}
}

func TestSessionStore_Delete(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewSessionStore(client)
	ctx := context.Background()
	session := createTestSession("user-1")

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Delete(ctx, session.ID); err != nil {
		t.Fatalf("unexpected error deleting session: %v", err)
	}

	if _, err := store.Get(ctx, session.ID); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Refresh token index is cleaned up too
	if _, err := store.GetByRefreshToken(ctx, session.RefreshToken); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound for refresh token after delete, got %v", err)
	}

	// Deleting an already-deleted session is a no-op
	if err := store.Delete(ctx, session.ID); err != nil {
		t.Errorf("expected nil deleting missing session, got %v", err)
	}
}

func TestSessionStore_DeleteByUser(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewSessionStore(client)
	ctx := context.Background()

	first := createTestSession("user-1")
	second := createTestSession("user-1")
	second.ID = "session-456"
	second.RefreshToken = "refresh-456"
	other := createTestSession("user-2")
	other.ID = "session-789"
	other.RefreshToken = "refresh-789"

	for _, s := range []*domain.Session{first, second, other} {
		if err := store.Save(ctx, s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := store.DeleteByUser(ctx, "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := store.Get(ctx, first.ID); err != domain.ErrNotFound {
		t.Errorf("expected first session deleted, got %v", err)
	}
	if _, err := store.Get(ctx, second.ID); err != domain.ErrNotFound {
		t.Errorf("expected second session deleted, got %v", err)
	}

	// Other user's session is untouched
	if _, err := store.Get(ctx, other.ID); err != nil {
		t.Errorf("expected other user's session to survive, got %v", err)
	}
}

func TestSessionStore_TTLExpiration(t *testing.T) {
	client, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := createTestSession("user-1")
	session.ExpiresAt = time.Now().Add(time.Minute)

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, session.ID); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound after TTL, got %v", err)
	}
}
