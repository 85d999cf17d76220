package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/cart"
	"github.com/rohit-kumar-in/Arvind-Trader/events"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/catalog"
)

// CartModule keeps one cart per shopper session. Product data is
// snapshotted from the catalog module when a line is first added.
type CartModule struct {
	logger      types.Logger
	catalogPort catalog.CatalogPort
	sessions    *domain.Sessions
	eventBus    mono.EventBus
	idleTimeout time.Duration

	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
}

// DefaultIdleTimeout is how long an untouched cart is kept.
const DefaultIdleTimeout = 24 * time.Hour

// Compile-time interface checks
var (
	_ mono.Module                = (*CartModule)(nil)
	_ mono.ServiceProviderModule = (*CartModule)(nil)
	_ mono.DependentModule       = (*CartModule)(nil)
	_ mono.EventEmitterModule    = (*CartModule)(nil)
	_ mono.HealthCheckableModule = (*CartModule)(nil)
)

// NewModule creates a new cart module.
func NewModule(logger types.Logger) *CartModule {
	m := &CartModule{
		logger:      logger.WithModule("cart"),
		idleTimeout: DefaultIdleTimeout,
	}
	m.sessions = domain.NewSessions(m.watch)
	return m
}

// SetIdleTimeout changes how long an untouched cart is kept. Non-positive
// values are ignored.
func (m *CartModule) SetIdleTimeout(d time.Duration) {
	if d > 0 {
		m.idleTimeout = d
	}
}

// Name returns the module name.
func (m *CartModule) Name() string {
	return "cart"
}

// Dependencies returns the modules the cart reads products from.
func (m *CartModule) Dependencies() []string {
	return []string{"catalog"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *CartModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "catalog" {
		m.catalogPort = catalog.NewCatalogAdapter(container)
	}
}

// SetEventBus receives the EventBus from the framework.
func (m *CartModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *CartModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.CartChangedV1.ToBase(),
	}
}

// RegisterServices registers the cart request-reply services.
func (m *CartModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "get-cart", json.Unmarshal, json.Marshal, m.getCart,
	); err != nil {
		return fmt.Errorf("failed to register get-cart service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "add-to-cart", json.Unmarshal, json.Marshal, m.addItem,
	); err != nil {
		return fmt.Errorf("failed to register add-to-cart service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-cart-quantity", json.Unmarshal, json.Marshal, m.updateQuantity,
	); err != nil {
		return fmt.Errorf("failed to register update-cart-quantity service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "remove-from-cart", json.Unmarshal, json.Marshal, m.removeItem,
	); err != nil {
		return fmt.Errorf("failed to register remove-from-cart service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "clear-cart", json.Unmarshal, json.Marshal, m.clearCart,
	); err != nil {
		return fmt.Errorf("failed to register clear-cart service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "checkout-cart", json.Unmarshal, json.Marshal, m.checkoutCart,
	); err != nil {
		return fmt.Errorf("failed to register checkout-cart service: %w", err)
	}

	log.Printf("[cart] Registered services: get-cart, add-to-cart, update-cart-quantity, remove-from-cart, clear-cart, checkout-cart")
	return nil
}

// Start verifies the catalog dependency is wired and starts expiring idle carts.
func (m *CartModule) Start(_ context.Context) error {
	if m.catalogPort == nil {
		return fmt.Errorf("catalogPort dependency not set")
	}
	if m.eventBus == nil {
		log.Println("[cart] Warning: eventBus not set, events will not be published")
	}

	m.stopChan = make(chan struct{})
	m.doneChan = make(chan struct{})
	go m.expireIdle()

	log.Println("[cart] Module started (depends on: catalog)")
	return nil
}

// Stop stops the idle cart sweeper.
func (m *CartModule) Stop(ctx context.Context) error {
	if m.stopChan != nil {
		m.stopOnce.Do(func() {
			close(m.stopChan)
		})
		select {
		case <-m.doneChan:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	log.Println("[cart] Module stopped")
	return nil
}

// expireIdle drops carts untouched for longer than the idle timeout.
func (m *CartModule) expireIdle() {
	ticker := time.NewTicker(sweepInterval(m.idleTimeout))
	defer ticker.Stop()
	defer close(m.doneChan)

	for {
		select {
		case <-m.stopChan:
			return
		case <-ticker.C:
			if n := m.sessions.Sweep(m.idleTimeout); n > 0 {
				m.logger.Debug("Expired idle carts", "count", n, "remaining", m.sessions.Len())
			}
		}
	}
}

// sweepInterval checks a few times per timeout, at most once a minute.
func sweepInterval(idle time.Duration) time.Duration {
	return max(idle/4, time.Minute)
}

// Health reports the number of live carts.
func (m *CartModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"sessions": m.sessions.Len(),
		},
	}
}

// watch subscribes every new session cart to the CartChanged feed.
func (m *CartModule) watch(sessionID string, store *domain.Store) {
	store.Subscribe(func(snap domain.Snapshot) {
		if m.eventBus == nil {
			return
		}
		lines := make([]events.CartLineInfo, len(snap.Items))
		for i, it := range snap.Items {
			lines[i] = events.CartLineInfo{
				Key:         it.Key,
				ProductID:   it.Product.ID,
				ProductName: it.Product.Name,
				VariantID:   it.Variant.ID,
				Price:       it.Variant.Price,
				Quantity:    it.Quantity,
			}
		}
		if err := events.CartChangedV1.Publish(m.eventBus, events.CartChangedEvent{
			SessionID: sessionID,
			Lines:     lines,
			Total:     snap.Total,
			ItemCount: snap.ItemCount,
			ChangedAt: time.Now(),
		}, nil); err != nil {
			m.logger.Warn("Failed to publish CartChanged", "session", sessionID, "error", err)
		}
	})
}
