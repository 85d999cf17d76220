package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
	"github.com/rohit-kumar-in/Arvind-Trader/events"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/admin"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/cart"
	catalogmod "github.com/rohit-kumar-in/Arvind-Trader/modules/catalog"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/checkout"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/enquiry"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/notification"
	"github.com/rohit-kumar-in/Arvind-Trader/ratelimit"
)

// Config configures the HTTP server.
type Config struct {
	Addr           string
	AllowedOrigins string
	AccessLog      bool

	// Limiter throttles checkout, contact and admin login. Nil disables it.
	Limiter ratelimit.Limiter
}

// APIModule is the driving adapter exposing the storefront over HTTP and
// the websocket cart feed.
type APIModule struct {
	cfg    Config
	logger types.Logger
	app    *fiber.App
	hub    *CartHub

	cancelHub context.CancelFunc

	catalogPort      catalogmod.CatalogPort
	cartPort         cart.CartPort
	checkoutPort     checkout.CheckoutPort
	enquiryPort      enquiry.EnquiryPort
	adminPort        admin.AdminPort
	notificationPort notification.NotificationPort
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*APIModule)(nil)
	_ mono.DependentModule       = (*APIModule)(nil)
	_ mono.EventConsumerModule   = (*APIModule)(nil)
	_ mono.HealthCheckableModule = (*APIModule)(nil)
)

// NewModule creates a new APIModule.
func NewModule(cfg Config, logger types.Logger) *APIModule {
	return &APIModule{
		cfg:    cfg,
		logger: logger.WithModule("api"),
		hub:    NewCartHub(),
	}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"catalog", "cart", "checkout", "enquiry", "admin", "notification"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "catalog":
		m.catalogPort = catalogmod.NewCatalogAdapter(container)
	case "cart":
		m.cartPort = cart.NewCartAdapter(container)
	case "checkout":
		m.checkoutPort = checkout.NewCheckoutAdapter(container)
	case "enquiry":
		m.enquiryPort = enquiry.NewEnquiryAdapter(container)
	case "admin":
		m.adminPort = admin.NewAdminAdapter(container)
	case "notification":
		m.notificationPort = notification.NewNotificationAdapter(container)
	}
}

// RegisterEventConsumers subscribes the cart feed to cart changes.
func (m *APIModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(
		registry, events.CartChangedV1, m.handleCartChanged, m,
	); err != nil {
		return fmt.Errorf("failed to register CartChanged consumer: %w", err)
	}
	return nil
}

// Start builds the Fiber app and starts listening.
func (m *APIModule) Start(_ context.Context) error {
	if err := m.checkPorts(); err != nil {
		return err
	}

	m.app = m.newApp()

	hubCtx, cancel := context.WithCancel(context.Background())
	m.cancelHub = cancel
	go m.hub.Run(hubCtx)

	errCh := make(chan error, 1)
	go func() {
		if err := m.app.Listen(m.cfg.Addr); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		cancel()
		return fmt.Errorf("HTTP server failed to start: %w", err)
	case <-time.After(100 * time.Millisecond):
	}

	m.logger.Info("HTTP server started", "addr", m.cfg.Addr)
	return nil
}

// Stop shuts down the HTTP server and closes every cart feed.
func (m *APIModule) Stop(ctx context.Context) error {
	if m.cancelHub != nil {
		m.cancelHub()
		m.hub.Wait()
	}
	if m.cfg.Limiter != nil {
		if err := m.cfg.Limiter.Close(); err != nil {
			m.logger.Warn("Failed to close rate limiter", "error", err)
		}
	}
	if m.app == nil {
		return nil
	}
	if err := m.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	m.logger.Info("HTTP server stopped")
	return nil
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"addr":       m.cfg.Addr,
			"cart_feeds": m.hub.ClientCount(),
		},
	}
}

func (m *APIModule) checkPorts() error {
	switch {
	case m.catalogPort == nil:
		return fmt.Errorf("catalogPort dependency not set")
	case m.cartPort == nil:
		return fmt.Errorf("cartPort dependency not set")
	case m.checkoutPort == nil:
		return fmt.Errorf("checkoutPort dependency not set")
	case m.enquiryPort == nil:
		return fmt.Errorf("enquiryPort dependency not set")
	case m.adminPort == nil:
		return fmt.Errorf("adminPort dependency not set")
	case m.notificationPort == nil:
		return fmt.Errorf("notificationPort dependency not set")
	}
	return nil
}

// newApp builds the Fiber app with middleware and routes.
func (m *APIModule) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Arvind Trader",
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
		BodyLimit:             maxUploadSize + 1<<20,
	})

	app.Use(recover.New())
	if m.cfg.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} ${method} ${path} ${latency}\n",
		}))
	}
	if m.cfg.AllowedOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     m.cfg.AllowedOrigins,
			AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowHeaders:     "Content-Type,Authorization," + SessionHeader,
			ExposeHeaders:    SessionHeader,
			AllowCredentials: true,
		}))
	}
	app.Use(SessionMiddleware())

	m.setupRoutes(app)
	return app
}

// handleCartChanged pushes the new cart to the session's open feeds.
func (m *APIModule) handleCartChanged(_ context.Context, event events.CartChangedEvent, _ *mono.Msg) error {
	lines := make([]CartFeedLine, len(event.Lines))
	for i, l := range event.Lines {
		lines[i] = CartFeedLine{
			Key:         l.Key,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			VariantID:   l.VariantID,
			Price:       l.Price,
			Quantity:    l.Quantity,
		}
	}
	m.hub.Send(event.SessionID, CartFeedMessage{
		Type:         "cart",
		SessionID:    event.SessionID,
		Lines:        lines,
		Total:        event.Total,
		DisplayTotal: catalog.DisplayPrice(event.Total),
		ItemCount:    event.ItemCount,
		ChangedAt:    event.ChangedAt,
	})
	return nil
}
