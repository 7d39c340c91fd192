package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/primelabel/labelview/internal/core/domain"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	s := &Session{ID: "sess-1", Token: "tok-1", CreatedAt: time.Now()}
	if err := store.Put(context.Background(), s); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Token != "tok-1" {
		t.Fatalf("wrong session: %+v", got)
	}

	// Returned sessions are copies.
	got.Token = "mutated"
	again, _ := store.Get(context.Background(), "sess-1")
	if again.Token != "tok-1" {
		t.Fatal("store entry must not be mutable through returned sessions")
	}
}

func TestMemoryStore_UnknownID(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, err := store.Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemoryStore_ExpiresEntries(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	now := time.Now()
	store.now = func() time.Time { return now }
	_ = store.Put(context.Background(), &Session{ID: "sess-1"})

	store.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err := store.Get(context.Background(), "sess-1")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_ = store.Put(context.Background(), &Session{ID: "sess-1"})
	if err := store.Delete(context.Background(), "sess-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(context.Background(), "sess-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}
