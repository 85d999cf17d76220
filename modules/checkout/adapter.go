package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// checkoutAdapter wraps ServiceContainer for type-safe cross-module communication.
type checkoutAdapter struct {
	container mono.ServiceContainer
}

// NewCheckoutAdapter creates a new adapter for checkout services.
func NewCheckoutAdapter(container mono.ServiceContainer) CheckoutPort {
	if container == nil {
		panic("checkout adapter requires non-nil ServiceContainer")
	}
	return &checkoutAdapter{container: container}
}

// PlaceOrder checks out a cart via the place-order service.
func (a *checkoutAdapter) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*OrderResponse, error) {
	var resp OrderResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"place-order",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("place-order service call failed: %w", err))
	}
	return &resp, nil
}

// GetOrder returns a placed order via the get-order service.
func (a *checkoutAdapter) GetOrder(ctx context.Context, orderNumber string) (*OrderResponse, error) {
	req := GetOrderRequest{OrderNumber: orderNumber}
	var resp OrderResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-order",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("get-order service call failed: %w", err))
	}
	return &resp, nil
}
