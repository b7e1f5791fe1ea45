package session

import (
	"context"
	"testing"
	"time"

	"vendor_listing/internal/domain/wizard"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(time.Hour)
	store.now = func() time.Time { return now }

	fresh := &wizard.Session{ID: "s-1", LastActive: now}
	stale := &wizard.Session{ID: "s-2", LastActive: now.Add(-2 * time.Hour)}

	t.Run("put evicts idle sessions", func(t *testing.T) {
		store.sessions["s-2"] = stale
		if err := store.Put(ctx, fresh); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Len() != 1 {
			t.Fatalf("expected stale session evicted, got %d", store.Len())
		}
	})

	t.Run("get", func(t *testing.T) {
		got, err := store.Get(ctx, "s-1")
		if err != nil || got != fresh {
			t.Fatalf("expected stored session, got %v err=%v", got, err)
		}
		got, err = store.Get(ctx, "unknown")
		if err != nil || got != nil {
			t.Fatalf("expected nil for unknown session, got %v err=%v", got, err)
		}
	})

	t.Run("get drops expired session", func(t *testing.T) {
		now = now.Add(90 * time.Minute)
		got, err := store.Get(ctx, "s-1")
		if err != nil || got != nil {
			t.Fatalf("expected expired session to be gone, got %v err=%v", got, err)
		}
		if store.Len() != 0 {
			t.Fatalf("expected store empty, got %d", store.Len())
		}
	})

	t.Run("delete", func(t *testing.T) {
		_ = store.Put(ctx, &wizard.Session{ID: "s-3", LastActive: now})
		_ = store.Delete(ctx, "s-3")
		if got, _ := store.Get(ctx, "s-3"); got != nil {
			t.Fatalf("expected deleted session to be gone")
		}
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		forever := NewMemoryStore(0)
		_ = forever.Put(ctx, &wizard.Session{ID: "old", LastActive: time.Unix(0, 0)})
		if got, _ := forever.Get(ctx, "old"); got == nil {
			t.Fatalf("expected session kept without ttl")
		}
	})
}
