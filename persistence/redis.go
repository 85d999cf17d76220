package persistence

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono/pkg/storage"
	"github.com/sony/gobreaker"
)

// RedisStore keeps values in a storage.Storage (gofiber Redis in
// production) behind a circuit breaker.
type RedisStore struct {
	storage storage.Storage
	prefix  string
	cb      *gobreaker.CircuitBreaker
}

// NewRedisStore wraps s; every key is stored under prefix.
func NewRedisStore(s storage.Storage, prefix string) *RedisStore {
	settings := gobreaker.Settings{
		Name:        "persistence-redis",
		MaxRequests: 3,
		Interval:    5 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Printf("[persistence] Circuit breaker %s: %s -> %s", name, from, to)
		},
	}

	return &RedisStore{
		storage: s,
		prefix:  prefix,
		cb:      gobreaker.NewCircuitBreaker(settings),
	}
}

// Get reads a key. gofiber storages return nil data for missing keys.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.storage.GetWithContext(ctx, s.prefix+key)
	})
	if err != nil {
		return "", false, s.wrap("get", key, err)
	}
	data, _ := res.([]byte)
	if len(data) == 0 {
		return "", false, nil
	}
	return string(data), true, nil
}

// Set writes a key without expiry.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.storage.SetWithContext(ctx, s.prefix+key, []byte(value), 0)
	})
	if err != nil {
		return s.wrap("set", key, err)
	}
	return nil
}

// Remove deletes a key.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.storage.DeleteWithContext(ctx, s.prefix+key)
	})
	if err != nil {
		return s.wrap("remove", key, err)
	}
	return nil
}

// Close closes the underlying storage.
func (s *RedisStore) Close() error {
	return s.storage.Close()
}

func (s *RedisStore) wrap(op, key string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("failed to %s %s: %w", op, key, ErrUnavailable)
	}
	return fmt.Errorf("failed to %s %s: %w", op, key, err)
}
