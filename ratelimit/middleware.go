package ratelimit

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// KeyFunc extracts the rate limit key from a request.
type KeyFunc func(c *fiber.Ctx) string

// ByIP keys requests by client address.
func ByIP(c *fiber.Ctx) string {
	return c.IP()
}

// Middleware limits requests per key under scope. Limiter failures let
// the request through.
func Middleware(limiter Limiter, scope string, keyFn KeyFunc) fiber.Handler {
	limit := strconv.Itoa(limiter.Config().RequestsPerWindow)

	return func(c *fiber.Ctx) error {
		key := keyFn(c)
		if key == "" {
			return fiber.NewError(fiber.StatusForbidden, "Unable to determine client identity")
		}

		result, err := limiter.Allow(c.UserContext(), scope+":"+key)
		if err != nil {
			log.Printf("[ratelimit] Limiter error for %s: %v", scope, err)
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", limit)
		c.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := int(result.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Set("Retry-After", strconv.Itoa(retryAfter))
			return fiber.NewError(fiber.StatusTooManyRequests,
				fmt.Sprintf("Rate limit exceeded. Please retry after %d seconds.", retryAfter))
		}
		return c.Next()
	}
}
