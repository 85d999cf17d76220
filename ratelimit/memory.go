package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter is a sliding window limiter for a single process.
type MemoryLimiter struct {
	config Config
	now    func() time.Time

	mu   sync.Mutex
	hits map[string][]time.Time
}

// NewMemoryLimiter creates a new in-process sliding window limiter.
func NewMemoryLimiter(config Config) *MemoryLimiter {
	return &MemoryLimiter{
		config: config,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
}

// Allow records a request for key if the window has room.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (*Result, error) {
	now := l.now()
	windowStart := now.Add(-l.config.WindowSize)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}

	res := &Result{ResetAt: now.Add(l.config.WindowSize)}
	if len(kept) < l.config.RequestsPerWindow {
		kept = append(kept, now)
		res.Allowed = true
		res.Remaining = l.config.RequestsPerWindow - len(kept)
	} else {
		res.RetryAfter = kept[0].Add(l.config.WindowSize).Sub(now)
	}

	if len(kept) == 0 {
		delete(l.hits, key)
	} else {
		l.hits[key] = kept
	}
	return res, nil
}

// Config returns the limiter's configuration.
func (l *MemoryLimiter) Config() Config {
	return l.config
}

// Close releases nothing; it satisfies Limiter.
func (l *MemoryLimiter) Close() error {
	return nil
}
