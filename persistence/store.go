// Package persistence is the key-value collaborator behind the catalog.
// Values are opaque strings; the catalog codec decides what goes in them.
package persistence

import (
	"context"
	"errors"
)

// Keys used by the storefront.
const (
	ProductsKey  = "products"
	HeroImageKey = "hero-image"
)

// ErrUnavailable is returned when a backend refuses calls, for example
// while its circuit breaker is open.
var ErrUnavailable = errors.New("persistence backend unavailable")

// Store is a string key-value store. Get reports absence with ok=false
// rather than an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
