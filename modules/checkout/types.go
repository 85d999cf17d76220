package checkout

import (
	"context"

	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/order"
)

// PlaceOrderRequest is the checkout form.
type PlaceOrderRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Address   string `json:"address" validate:"required,max=1000"`
}

// GetOrderRequest is the request for a placed order.
type GetOrderRequest struct {
	OrderNumber string `json:"order_number"`
}

// OrderResponse is a placed order with display totals.
type OrderResponse struct {
	Order        domain.Order `json:"order"`
	DisplayTotal string       `json:"display_total"`
}

// CheckoutPort defines the interface for checkout operations used by other modules.
type CheckoutPort interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*OrderResponse, error)
	GetOrder(ctx context.Context, orderNumber string) (*OrderResponse, error)
}
