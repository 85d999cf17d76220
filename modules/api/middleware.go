package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/admin"
)

const (
	// SessionHeader lets API clients pass their session id explicitly.
	SessionHeader = "X-Session-ID"

	// SessionCookie carries the session id for browsers.
	SessionCookie = "session_id"

	// SessionContextKey is the Locals key holding the session id.
	SessionContextKey = "session_id"

	sessionMaxAge = 30 * 24 * time.Hour
	maxSessionLen = 128
)

// SessionMiddleware resolves the shopper's session id from the header or
// cookie, issuing a new one when neither is present.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(SessionHeader))
		if id == "" {
			id = c.Cookies(SessionCookie)
		}
		if id == "" || len(id) > maxSessionLen {
			id = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().Add(sessionMaxAge),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(SessionContextKey, id)
		c.Set(SessionHeader, id)
		return c.Next()
	}
}

// sessionID returns the id resolved by SessionMiddleware.
func sessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(SessionContextKey).(string)
	return id
}

// AdminMiddleware requires a valid admin bearer token.
func AdminMiddleware(adminPort admin.AdminPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Authorization header is required",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid authorization header format. Use: Bearer <token>",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		resp, err := adminPort.Verify(c.UserContext(), token)
		if err != nil || !resp.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid or expired token",
			})
		}

		return c.Next()
	}
}
