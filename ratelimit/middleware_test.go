package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (*Result, error) {
	return nil, errors.New("redis down")
}
func (failingLimiter) Config() Config { return Config{RequestsPerWindow: 1, WindowSize: time.Minute} }
func (failingLimiter) Close() error   { return nil }

func limitedApp(l Limiter) *fiber.App {
	app := fiber.New()
	app.Post("/contact", Middleware(l, "contact", ByIP), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func TestMiddleware(t *testing.T) {
	app := limitedApp(NewMemoryLimiter(Config{RequestsPerWindow: 2, WindowSize: time.Minute}))

	wantStatus := []int{fiber.StatusCreated, fiber.StatusCreated, fiber.StatusTooManyRequests}
	for i, want := range wantStatus {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/contact", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, "request %d", i+1)
		assert.Equal(t, "2", resp.Header.Get("X-RateLimit-Limit"))
		if want == fiber.StatusTooManyRequests {
			assert.Equal(t, "60", resp.Header.Get("Retry-After"))
		}
	}
}

func TestMiddleware_FailsOpen(t *testing.T) {
	app := limitedApp(failingLimiter{})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/contact", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}
