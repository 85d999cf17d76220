package cart

import (
	"context"
	"sync"
	"time"
)

type sessionEntry struct {
	store   *Store
	touched time.Time
}

// Sessions holds one Store per shopper session.
type Sessions struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	onNew   func(sessionID string, s *Store)
	now     func() time.Time
}

// NewSessions creates an empty registry. onNew, if set, runs once for each
// store the registry creates, before it is handed out.
func NewSessions(onNew func(sessionID string, s *Store)) *Sessions {
	return &Sessions{
		entries: make(map[string]*sessionEntry),
		onNew:   onNew,
		now:     time.Now,
	}
}

// Get returns the session's store, creating it on first use. Every call
// marks the session as active.
func (r *Sessions) Get(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		e = &sessionEntry{store: NewStore()}
		if r.onNew != nil {
			r.onNew(sessionID, e.store)
		}
		r.entries[sessionID] = e
	}
	e.touched = r.now()
	return e.store
}

// Provide returns ctx with the session's store provisioned.
func (r *Sessions) Provide(ctx context.Context, sessionID string) context.Context {
	return WithStore(ctx, r.Get(sessionID))
}

// Sweep forgets sessions not used within maxIdle and returns how many
// were removed.
func (r *Sessions) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.entries {
		if e.touched.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
