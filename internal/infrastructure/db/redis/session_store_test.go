package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/authgate/session-service/internal/core/domain"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionStore(client), mr
}

func testSession(token string, ttl time.Duration) *domain.Session {
	now := time.Now().UTC()
	return &domain.Session{
		Token:     token,
		UserID:    "u1",
		Username:  "john",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestSessionStore_SaveAndFind(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	saved := testSession("tok123", time.Hour)
	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	found, err := store.Find(ctx, "tok123")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Token != "tok123" || found.UserID != "u1" || found.Username != "john" {
		t.Fatalf("unexpected session: %+v", found)
	}
	if found.ExpiresAt.Unix() != saved.ExpiresAt.Unix() {
		t.Fatalf("expiry not preserved: %v vs %v", found.ExpiresAt, saved.ExpiresAt)
	}
}

func TestSessionStore_Save_AlreadyExpired(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.Save(context.Background(), testSession("tok", -time.Minute)); err == nil {
		t.Fatalf("expected error saving an expired session")
	}
}

func TestSessionStore_Find_Unknown(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Find(context.Background(), "missing"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSession("tok123", time.Hour)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := store.Delete(ctx, "tok123"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Find(ctx, "tok123"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, "tok123"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestSessionStore_ExpiryEvictsKey(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSession("tok123", time.Minute)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Find(ctx, "tok123"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after TTL, got %v", err)
	}
}
