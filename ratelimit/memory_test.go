package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_Allow(t *testing.T) {
	l := NewMemoryLimiter(Config{RequestsPerWindow: 3, WindowSize: time.Minute})
	now := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := range 3 {
		res, err := l.Allow(ctx, "ip-1")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d", i+1)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := l.Allow(ctx, "ip-1")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, time.Minute, res.RetryAfter)

	// Other keys have their own window.
	res, err = l.Allow(ctx, "ip-2")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	// The window slides.
	now = now.Add(time.Minute + time.Second)
	res, err = l.Allow(ctx, "ip-1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)
}

func TestMemoryLimiter_RetryAfterTracksOldestHit(t *testing.T) {
	l := NewMemoryLimiter(Config{RequestsPerWindow: 2, WindowSize: 10 * time.Second})
	now := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = l.Allow(ctx, "k")
	now = now.Add(4 * time.Second)
	_, _ = l.Allow(ctx, "k")

	res, err := l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 6*time.Second, res.RetryAfter)
}
