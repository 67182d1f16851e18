package session

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryStore_CreateAndRead(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	id := store.Create(ctx, "visitor@example.com")
	if id == "" {
		t.Fatal("Create returned empty session ID")
	}

	if !store.IsAuthenticated(ctx, id) {
		t.Error("IsAuthenticated should be true for a fresh session")
	}
	email, ok := store.GetEmail(ctx, id)
	if !ok {
		t.Fatal("GetEmail should find a fresh session")
	}
	if email != "visitor@example.com" {
		t.Errorf("email = %q, want %q", email, "visitor@example.com")
	}
}

func TestMemoryStore_UnknownID(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	if store.IsAuthenticated(ctx, "nonexistent") {
		t.Error("IsAuthenticated should be false for unknown ID")
	}
	email, ok := store.GetEmail(ctx, "nonexistent")
	if ok {
		t.Error("GetEmail should return false for unknown ID")
	}
	if email != "" {
		t.Errorf("email = %q, want empty string", email)
	}
}

func TestMemoryStore_DistinctIDs(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	a := store.Create(ctx, "a@example.com")
	b := store.Create(ctx, "b@example.com")
	if a == b {
		t.Fatalf("Create returned duplicate session ID %q", a)
	}
}

func TestMemoryStore_ExpiryOnRead(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	now := time.Now().UTC()
	store.nowF = func() time.Time { return now }
	id := store.Create(ctx, "visitor@example.com")

	// Just before the deadline the session is live.
	store.nowF = func() time.Time { return now.Add(time.Hour - time.Second) }
	if !store.IsAuthenticated(ctx, id) {
		t.Error("session should be live before expiry")
	}

	// At the deadline the session is gone.
	store.nowF = func() time.Time { return now.Add(time.Hour) }
	if store.IsAuthenticated(ctx, id) {
		t.Error("session should be absent at expiry")
	}

	// The expired entry was deleted, so a later read with an earlier clock
	// still misses.
	store.nowF = func() time.Time { return now }
	if store.IsAuthenticated(ctx, id) {
		t.Error("expired session should have been deleted on read")
	}
}

func TestMemoryStore_DestroyIdempotent(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	id := store.Create(ctx, "visitor@example.com")
	store.Destroy(ctx, id)
	if store.IsAuthenticated(ctx, id) {
		t.Error("IsAuthenticated should be false after Destroy")
	}

	// Destroying again, or destroying an unknown ID, is a no-op.
	store.Destroy(ctx, id)
	store.Destroy(ctx, "nonexistent")
}

func TestMemoryStore_DefaultTTL(t *testing.T) {
	store := NewMemoryStore(0)
	if store.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", store.ttl, DefaultTTL)
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = store.Create(ctx, "visitor@example.com")
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.IsAuthenticated(ctx, ids[i])
			store.Destroy(ctx, ids[i])
		}(i)
	}
	wg.Wait()
}
