package session

import (
	"testing"
	"time"

	"vocaquiz/internal/dialog"
)

func TestStoreCreateAndWithSession(t *testing.T) {
	store := NewStore(DefaultTTL)

	id := store.Create()
	if id == "" {
		t.Fatal("Create() should return an ID")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}

	ok := store.WithSession(id, func(s dialog.Session) dialog.Session {
		if s.ID != id {
			t.Errorf("session ID = %q, want %q", s.ID, id)
		}
		s.SessionTotal = 3
		return s
	})
	if !ok {
		t.Fatal("WithSession() should find the session")
	}

	store.WithSession(id, func(s dialog.Session) dialog.Session {
		if s.SessionTotal != 3 {
			t.Errorf("SessionTotal = %d, want the stored value 3", s.SessionTotal)
		}
		return s
	})
}

func TestStoreWithSessionMissing(t *testing.T) {
	store := NewStore(DefaultTTL)

	called := false
	ok := store.WithSession("no-such-id", func(s dialog.Session) dialog.Session {
		called = true
		return s
	})
	if ok {
		t.Error("WithSession() should return false for an unknown ID")
	}
	if called {
		t.Error("fn must not run for an unknown ID")
	}
}

func TestStoreRemoveExpired(t *testing.T) {
	store := NewStore(time.Minute)

	stale := store.Create()
	fresh := store.Create()

	store.mu.Lock()
	store.entries[stale].lastSeen = time.Now().Add(-2 * time.Minute)
	store.mu.Unlock()

	store.removeExpired()

	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after cleanup", store.Len())
	}
	if store.WithSession(stale, func(s dialog.Session) dialog.Session { return s }) {
		t.Error("stale session should be gone")
	}
	if !store.WithSession(fresh, func(s dialog.Session) dialog.Session { return s }) {
		t.Error("fresh session should survive")
	}
}

func TestNewStoreDefaultsTTL(t *testing.T) {
	store := NewStore(0)
	if store.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", store.ttl, DefaultTTL)
	}
}
