package cart

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/cart"
	catalogdomain "github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
)

// provide scopes the session's cart onto ctx.
func (m *CartModule) provide(ctx context.Context, sessionID string) (context.Context, error) {
	if sessionID == "" {
		return ctx, ErrMissingSession
	}
	return m.sessions.Provide(ctx, sessionID), nil
}

// getCart handles the get-cart service request.
func (m *CartModule) getCart(ctx context.Context, req GetCartRequest, _ *mono.Msg) (CartResponse, error) {
	ctx, err := m.provide(ctx, req.SessionID)
	if err != nil {
		return CartResponse{}, err
	}
	return currentCart(ctx, req.SessionID)
}

// addItem handles the add-to-cart service request.
func (m *CartModule) addItem(ctx context.Context, req AddItemRequest, _ *mono.Msg) (CartResponse, error) {
	ctx, err := m.provide(ctx, req.SessionID)
	if err != nil {
		return CartResponse{}, err
	}
	store, err := domain.FromContext(ctx)
	if err != nil {
		return CartResponse{}, err
	}

	detail, err := m.catalogPort.GetProduct(ctx, req.ProductID)
	if err != nil {
		return CartResponse{}, fmt.Errorf("failed to load product %d: %w", req.ProductID, err)
	}
	variant, ok := detail.Product.Variant(req.VariantID)
	if !ok {
		return CartResponse{}, fmt.Errorf("product %d: %w: %q", req.ProductID, catalogdomain.ErrVariantNotFound, req.VariantID)
	}

	line := store.Add(detail.Product, variant, req.Quantity)
	m.logger.Debug("Added to cart", "session", req.SessionID, "key", line.Key, "quantity", line.Quantity)
	return toResponse(req.SessionID, store.Snapshot()), nil
}

// updateQuantity handles the update-cart-quantity service request.
func (m *CartModule) updateQuantity(ctx context.Context, req UpdateQuantityRequest, _ *mono.Msg) (CartResponse, error) {
	ctx, err := m.provide(ctx, req.SessionID)
	if err != nil {
		return CartResponse{}, err
	}
	store, err := domain.FromContext(ctx)
	if err != nil {
		return CartResponse{}, err
	}
	store.UpdateQuantity(req.Key, req.Quantity)
	return toResponse(req.SessionID, store.Snapshot()), nil
}

// removeItem handles the remove-from-cart service request.
func (m *CartModule) removeItem(ctx context.Context, req RemoveItemRequest, _ *mono.Msg) (CartResponse, error) {
	ctx, err := m.provide(ctx, req.SessionID)
	if err != nil {
		return CartResponse{}, err
	}
	store, err := domain.FromContext(ctx)
	if err != nil {
		return CartResponse{}, err
	}
	store.Remove(req.Key)
	return toResponse(req.SessionID, store.Snapshot()), nil
}

// clearCart handles the clear-cart service request.
func (m *CartModule) clearCart(ctx context.Context, req ClearCartRequest, _ *mono.Msg) (CartResponse, error) {
	ctx, err := m.provide(ctx, req.SessionID)
	if err != nil {
		return CartResponse{}, err
	}
	store, err := domain.FromContext(ctx)
	if err != nil {
		return CartResponse{}, err
	}
	store.Clear()
	return toResponse(req.SessionID, store.Snapshot()), nil
}

// checkoutCart handles the checkout-cart service request. It returns the
// cart and empties it in one step.
func (m *CartModule) checkoutCart(ctx context.Context, req CheckoutCartRequest, _ *mono.Msg) (CartResponse, error) {
	ctx, err := m.provide(ctx, req.SessionID)
	if err != nil {
		return CartResponse{}, err
	}
	store, err := domain.FromContext(ctx)
	if err != nil {
		return CartResponse{}, err
	}
	return toResponse(req.SessionID, store.Drain()), nil
}

func currentCart(ctx context.Context, sessionID string) (CartResponse, error) {
	store, err := domain.FromContext(ctx)
	if err != nil {
		return CartResponse{}, err
	}
	return toResponse(sessionID, store.Snapshot()), nil
}
