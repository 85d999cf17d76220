package cart

import (
	"context"
	"errors"
)

// ErrStoreNotProvided is returned when cart operations run in a context
// that was never given a Store. It signals a wiring mistake, not a user error.
var ErrStoreNotProvided = errors.New("cart: store not provided in context")

type storeKey struct{}

// WithStore provisions a cart Store for everything that runs under ctx.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// FromContext returns the provisioned Store or ErrStoreNotProvided.
func FromContext(ctx context.Context) (*Store, error) {
	s, ok := ctx.Value(storeKey{}).(*Store)
	if !ok || s == nil {
		return nil, ErrStoreNotProvided
	}
	return s, nil
}
