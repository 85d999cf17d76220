package api

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rohit-kumar-in/Arvind-Trader/ratelimit"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes(app *fiber.App) {
	app.Get("/health", m.handleHealth)

	v1 := app.Group("/api/v1")

	v1.Get("/pages", m.handlePage)
	v1.Get("/hero", m.handleGetHero)

	products := v1.Group("/products")
	products.Get("/", m.handleListProducts)
	products.Get("/:id", m.handleGetProduct)
	products.Get("/:id/selection", m.handleSelectVariant)

	cart := v1.Group("/cart")
	cart.Get("/", m.handleGetCart)
	cart.Post("/items", m.handleAddCartItem)
	cart.Patch("/items/:key", m.handleUpdateCartItem)
	cart.Delete("/items/:key", m.handleRemoveCartItem)
	cart.Delete("/", m.handleClearCart)

	v1.Post("/checkout", m.limited("checkout"), m.handleCheckout)
	v1.Get("/orders/:number", m.handleGetOrder)
	v1.Post("/contact", m.limited("contact"), m.handleContact)

	v1.Post("/admin/login", m.limited("admin-login"), m.handleAdminLogin)

	adm := v1.Group("/admin", AdminMiddleware(m.adminPort))
	adm.Post("/products", m.handleAddProduct)
	adm.Put("/products/:id", m.handleUpdateProduct)
	adm.Delete("/products/:id", m.handleRemoveProduct)
	adm.Put("/hero", m.handleSetHero)
	adm.Post("/uploads", m.handleUpload)
	adm.Get("/enquiries", m.handleListEnquiries)
	adm.Get("/notifications", m.handleListNotifications)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/cart", websocket.New(m.handleCartFeed))
}

// limited throttles a route per client address when a limiter is configured.
func (m *APIModule) limited(scope string) fiber.Handler {
	if m.cfg.Limiter == nil {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return ratelimit.Middleware(m.cfg.Limiter, scope, ratelimit.ByIP)
}
