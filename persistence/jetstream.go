package persistence

import (
	"context"
	"errors"
	"fmt"

	kvjetstream "github.com/go-monolith/mono/plugin/kv-jetstream"
)

// JetStreamStore keeps values in a kv-jetstream bucket.
type JetStreamStore struct {
	bucket kvjetstream.KVStoragePort
}

// NewJetStreamStore wraps a bucket obtained from the kv plugin.
func NewJetStreamStore(bucket kvjetstream.KVStoragePort) *JetStreamStore {
	return &JetStreamStore{bucket: bucket}
}

// Get reads a key from the bucket.
func (s *JetStreamStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := s.bucket.Get(key)
	if err != nil {
		if errors.Is(err, kvjetstream.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes a key without expiry.
func (s *JetStreamStore) Set(_ context.Context, key, value string) error {
	if err := s.bucket.Set(key, []byte(value), 0); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Remove deletes a key; missing keys are not an error.
func (s *JetStreamStore) Remove(_ context.Context, key string) error {
	if err := s.bucket.Delete(key); err != nil && !errors.Is(err, kvjetstream.ErrKeyNotFound) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
