package persistence

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gofiber/storage/redis/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires Redis running on localhost:6379
const testRedisAddr = "localhost:6379"

// checkRedisAvailable checks if Redis is reachable before creating storage.
// gofiber/storage/redis panics on connection failure, so we check first.
func checkRedisAvailable(t *testing.T) {
	t.Helper()
	conn, err := net.DialTimeout("tcp", testRedisAddr, 2*time.Second)
	if err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}
	conn.Close()
}

func TestRedisStore_CRUD(t *testing.T) {
	checkRedisAvailable(t)

	storage := redis.New(redis.Config{
		Host: "localhost",
		Port: 6379,
	})
	s := NewRedisStore(storage, "arvind-trader-test:")
	t.Cleanup(func() {
		_ = s.Remove(context.Background(), HeroImageKey)
		s.Close()
	})

	ctx := context.Background()
	_, ok, err := s.Get(ctx, HeroImageKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, HeroImageKey, "banner.jpg"))
	v, ok, err := s.Get(ctx, HeroImageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "banner.jpg", v)

	require.NoError(t, s.Remove(ctx, HeroImageKey))
	_, ok, err = s.Get(ctx, HeroImageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
