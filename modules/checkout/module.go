package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/go-playground/validator/v10"
	"github.com/rohit-kumar-in/Arvind-Trader/events"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/cart"
	"github.com/rohit-kumar-in/Arvind-Trader/validation"
)

// CheckoutModule turns a session's cart into an order.
type CheckoutModule struct {
	logger    types.Logger
	repo      *OrderRepository
	cartPort  cart.CartPort
	validate  *validator.Validate
	newNumber func() string
	eventBus  mono.EventBus
}

// Compile-time interface checks
var (
	_ mono.Module                = (*CheckoutModule)(nil)
	_ mono.ServiceProviderModule = (*CheckoutModule)(nil)
	_ mono.DependentModule       = (*CheckoutModule)(nil)
	_ mono.EventEmitterModule    = (*CheckoutModule)(nil)
	_ mono.HealthCheckableModule = (*CheckoutModule)(nil)
)

// NewModule creates a new checkout module.
func NewModule(logger types.Logger) (*CheckoutModule, error) {
	gen, err := NewOrderNumberGenerator()
	if err != nil {
		return nil, err
	}
	return &CheckoutModule{
		logger:    logger.WithModule("checkout"),
		repo:      NewOrderRepository(),
		validate:  validation.New(),
		newNumber: gen,
	}, nil
}

// Name returns the module name.
func (m *CheckoutModule) Name() string {
	return "checkout"
}

// Dependencies returns the modules checkout reads carts from.
func (m *CheckoutModule) Dependencies() []string {
	return []string{"cart"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *CheckoutModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "cart" {
		m.cartPort = cart.NewCartAdapter(container)
	}
}

// SetEventBus receives the EventBus from the framework.
func (m *CheckoutModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *CheckoutModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.OrderPlacedV1.ToBase(),
	}
}

// RegisterServices registers the checkout request-reply services.
func (m *CheckoutModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "place-order", json.Unmarshal, json.Marshal, m.placeOrder,
	); err != nil {
		return fmt.Errorf("failed to register place-order service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-order", json.Unmarshal, json.Marshal, m.getOrder,
	); err != nil {
		return fmt.Errorf("failed to register get-order service: %w", err)
	}

	log.Printf("[checkout] Registered services: place-order, get-order")
	return nil
}

// Start verifies the cart dependency is wired.
func (m *CheckoutModule) Start(_ context.Context) error {
	if m.cartPort == nil {
		return fmt.Errorf("cartPort dependency not set")
	}
	log.Println("[checkout] Module started (depends on: cart)")
	return nil
}

// Stop stops the module.
func (m *CheckoutModule) Stop(_ context.Context) error {
	log.Println("[checkout] Module stopped")
	return nil
}

// Health reports the number of placed orders.
func (m *CheckoutModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"orders": m.repo.Count(),
		},
	}
}
