package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// cartAdapter wraps ServiceContainer for type-safe cross-module communication.
type cartAdapter struct {
	container mono.ServiceContainer
}

// NewCartAdapter creates a new adapter for cart services.
func NewCartAdapter(container mono.ServiceContainer) CartPort {
	if container == nil {
		panic("cart adapter requires non-nil ServiceContainer")
	}
	return &cartAdapter{container: container}
}

// GetCart returns the session's cart via the get-cart service.
func (a *cartAdapter) GetCart(ctx context.Context, sessionID string) (*CartResponse, error) {
	req := GetCartRequest{SessionID: sessionID}
	var resp CartResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-cart",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("get-cart service call failed: %w", err))
	}
	return &resp, nil
}

// AddItem adds a product variant via the add-to-cart service.
func (a *cartAdapter) AddItem(ctx context.Context, req *AddItemRequest) (*CartResponse, error) {
	var resp CartResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"add-to-cart",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("add-to-cart service call failed: %w", err))
	}
	return &resp, nil
}

// UpdateQuantity sets a line quantity via the update-cart-quantity service.
func (a *cartAdapter) UpdateQuantity(ctx context.Context, req *UpdateQuantityRequest) (*CartResponse, error) {
	var resp CartResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"update-cart-quantity",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("update-cart-quantity service call failed: %w", err))
	}
	return &resp, nil
}

// RemoveItem removes a line via the remove-from-cart service.
func (a *cartAdapter) RemoveItem(ctx context.Context, req *RemoveItemRequest) (*CartResponse, error) {
	var resp CartResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"remove-from-cart",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("remove-from-cart service call failed: %w", err))
	}
	return &resp, nil
}

// Clear empties the cart via the clear-cart service.
func (a *cartAdapter) Clear(ctx context.Context, sessionID string) (*CartResponse, error) {
	req := ClearCartRequest{SessionID: sessionID}
	var resp CartResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"clear-cart",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("clear-cart service call failed: %w", err))
	}
	return &resp, nil
}

// Checkout takes and empties the cart via the checkout-cart service.
func (a *cartAdapter) Checkout(ctx context.Context, sessionID string) (*CartResponse, error) {
	req := CheckoutCartRequest{SessionID: sessionID}
	var resp CartResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"checkout-cart",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("checkout-cart service call failed: %w", err))
	}
	return &resp, nil
}
