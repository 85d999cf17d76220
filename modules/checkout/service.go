package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/order"
	"github.com/rohit-kumar-in/Arvind-Trader/events"
	"github.com/rohit-kumar-in/Arvind-Trader/validation"
)

// maxNumberAttempts bounds retries on an order number collision.
const maxNumberAttempts = 5

// placeOrder handles the place-order service request.
func (m *CheckoutModule) placeOrder(ctx context.Context, req PlaceOrderRequest, _ *mono.Msg) (OrderResponse, error) {
	if err := m.validate.Struct(req); err != nil {
		return OrderResponse{}, fmt.Errorf("%w: %s", ErrInvalidOrder, validation.Describe(err))
	}

	number, err := m.uniqueNumber()
	if err != nil {
		return OrderResponse{}, err
	}

	// The cart is taken and emptied in one step; lines added afterwards
	// stay for the next order.
	c, err := m.cartPort.Checkout(ctx, req.SessionID)
	if err != nil {
		return OrderResponse{}, fmt.Errorf("failed to check out cart: %w", err)
	}
	if len(c.Lines) == 0 {
		return OrderResponse{}, ErrEmptyCart
	}

	lines := make([]domain.Line, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = domain.Line{
			Key:         l.Key,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			VariantID:   l.VariantID,
			Size:        l.Size,
			Color:       l.Color,
			Price:       l.Price,
			Quantity:    l.Quantity,
		}
	}
	o := &domain.Order{
		Number:    number,
		SessionID: req.SessionID,
		Name:      req.Name,
		Email:     req.Email,
		Address:   req.Address,
		Lines:     lines,
		Total:     c.Total,
		ItemCount: c.ItemCount,
		PlacedAt:  time.Now(),
	}
	m.repo.Save(o)

	if m.eventBus != nil {
		if err := events.OrderPlacedV1.Publish(m.eventBus, events.OrderPlacedEvent{
			OrderNumber: o.Number,
			SessionID:   o.SessionID,
			Email:       o.Email,
			Total:       o.Total,
			ItemCount:   o.ItemCount,
			PlacedAt:    o.PlacedAt,
		}, nil); err != nil {
			m.logger.Warn("Failed to publish OrderPlaced", "order", number, "error", err)
		}
	}

	m.logger.Info("Order placed", "order", number, "items", o.ItemCount, "total", o.Total)
	return toResponse(o), nil
}

// getOrder handles the get-order service request.
func (m *CheckoutModule) getOrder(_ context.Context, req GetOrderRequest, _ *mono.Msg) (OrderResponse, error) {
	if !IsValidOrderNumber(req.OrderNumber) {
		return OrderResponse{}, domain.ErrOrderNotFound
	}
	o, err := m.repo.FindByNumber(req.OrderNumber)
	if err != nil {
		return OrderResponse{}, err
	}
	return toResponse(o), nil
}

func (m *CheckoutModule) uniqueNumber() (string, error) {
	for range maxNumberAttempts {
		n := m.newNumber()
		if !m.repo.Exists(n) {
			return n, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique order number after %d attempts", maxNumberAttempts)
}

func toResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		Order:        *o,
		DisplayTotal: catalog.DisplayPrice(o.Total),
	}
}
