// Package session keeps per-conversation dialogue state in memory, keyed by
// session ID, with mutual exclusion per session so turns never interleave.
package session

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"vocaquiz/internal/dialog"
)

// DefaultTTL is how long an idle session survives before cleanup.
const DefaultTTL = 2 * time.Hour

type entry struct {
	mu       sync.Mutex
	state    dialog.Session
	lastSeen time.Time
}

// Store holds active sessions. One turn per session runs at a time; separate
// sessions proceed concurrently.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration

	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// NewStore creates a session store with the given idle TTL. A non-positive
// TTL falls back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		entries:     make(map[string]*entry),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}
}

// Create starts a new session and returns its ID.
func (s *Store) Create() string {
	id := uuid.New().String()

	s.mu.Lock()
	s.entries[id] = &entry{
		state:    dialog.NewSession(id),
		lastSeen: time.Now(),
	}
	s.mu.Unlock()

	return id
}

// WithSession runs fn against the session's state under its lock, storing
// whatever state fn returns. Returns false when the session does not exist
// (expired or never created).
func (s *Store) WithSession(id string, fn func(dialog.Session) dialog.Session) bool {
	s.mu.Lock()
	e, ok := s.entries[id]
	s.mu.Unlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = fn(e.state)
	e.lastSeen = time.Now()
	return true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartCleanup launches a background sweep that drops sessions idle longer
// than the TTL. Call Stop to end it.
func (s *Store) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.removeExpired()
			case <-s.stopCleanup:
				return
			}
		}
	}()
}

// Stop terminates the cleanup sweep.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stopCleanup) })
}

func (s *Store) removeExpired() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("Session cleanup: removed %d expired session%s", removed, pluralSuffix(removed))
	}
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// ErrNotFound reports a missing or expired session in error form for callers
// that prefer errors over booleans.
var ErrNotFound = fmt.Errorf("session not found")
