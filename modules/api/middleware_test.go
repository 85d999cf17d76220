package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionApp() *fiber.App {
	app := fiber.New()
	app.Use(SessionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(sessionID(c))
	})
	return app
}

func TestSessionMiddleware(t *testing.T) {
	app := sessionApp()

	tests := []struct {
		name      string
		header    string
		cookie    string
		want      string
		setCookie bool
	}{
		{"header wins", "from-header", "from-cookie", "from-header", false},
		{"cookie", "", "from-cookie", "from-cookie", false},
		{"new session", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(SessionHeader, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)

			got := resp.Header.Get(SessionHeader)
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Len(t, got, 36)
			}

			var issued bool
			for _, c := range resp.Cookies() {
				if c.Name == SessionCookie {
					issued = true
					assert.Equal(t, got, c.Value)
					assert.True(t, c.HttpOnly)
				}
			}
			assert.Equal(t, tt.setCookie, issued)
		})
	}
}
