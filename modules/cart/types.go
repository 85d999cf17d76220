package cart

import (
	"context"

	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/cart"
	"github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
)

// CartLine is the wire view of one cart line.
type CartLine struct {
	Key             string  `json:"key"`
	ProductID       int64   `json:"product_id"`
	ProductName     string  `json:"product_name"`
	VariantID       string  `json:"variant_id"`
	Size            string  `json:"size,omitempty"`
	Color           string  `json:"color,omitempty"`
	ImageURL        string  `json:"image_url"`
	Price           float64 `json:"price"`
	DisplayPrice    string  `json:"display_price"`
	Quantity        int     `json:"quantity"`
	Subtotal        float64 `json:"subtotal"`
	DisplaySubtotal string  `json:"display_subtotal"`
}

// CartResponse is a session's cart with its totals.
type CartResponse struct {
	SessionID    string     `json:"session_id"`
	Lines        []CartLine `json:"lines"`
	Total        float64    `json:"total"`
	DisplayTotal string     `json:"display_total"`
	ItemCount    int        `json:"item_count"`
}

// GetCartRequest is the request for a session's cart.
type GetCartRequest struct {
	SessionID string `json:"session_id"`
}

// AddItemRequest adds quantity of a product variant. Simple products use
// an empty VariantID or "base".
type AddItemRequest struct {
	SessionID string `json:"session_id"`
	ProductID int64  `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest sets the quantity of a line. Zero or less removes it.
type UpdateQuantityRequest struct {
	SessionID string `json:"session_id"`
	Key       string `json:"key"`
	Quantity  int    `json:"quantity"`
}

// RemoveItemRequest removes a line.
type RemoveItemRequest struct {
	SessionID string `json:"session_id"`
	Key       string `json:"key"`
}

// ClearCartRequest empties a session's cart.
type ClearCartRequest struct {
	SessionID string `json:"session_id"`
}

// CheckoutCartRequest takes the whole cart for an order, leaving it empty.
type CheckoutCartRequest struct {
	SessionID string `json:"session_id"`
}

// CartPort defines the interface for cart operations used by other modules.
type CartPort interface {
	GetCart(ctx context.Context, sessionID string) (*CartResponse, error)
	AddItem(ctx context.Context, req *AddItemRequest) (*CartResponse, error)
	UpdateQuantity(ctx context.Context, req *UpdateQuantityRequest) (*CartResponse, error)
	RemoveItem(ctx context.Context, req *RemoveItemRequest) (*CartResponse, error)
	Clear(ctx context.Context, sessionID string) (*CartResponse, error)
	Checkout(ctx context.Context, sessionID string) (*CartResponse, error)
}

// toResponse converts a cart snapshot to its wire form.
func toResponse(sessionID string, snap domain.Snapshot) CartResponse {
	lines := make([]CartLine, len(snap.Items))
	for i, it := range snap.Items {
		lines[i] = CartLine{
			Key:             it.Key,
			ProductID:       it.Product.ID,
			ProductName:     it.Product.Name,
			VariantID:       it.Variant.ID,
			Size:            it.Variant.Size,
			Color:           it.Variant.Color,
			ImageURL:        catalog.ResolveDisplayImage(it.Product, &it.Variant),
			Price:           it.Variant.Price,
			DisplayPrice:    catalog.DisplayPrice(it.Variant.Price),
			Quantity:        it.Quantity,
			Subtotal:        it.Subtotal(),
			DisplaySubtotal: catalog.DisplayPrice(it.Subtotal()),
		}
	}
	return CartResponse{
		SessionID:    sessionID,
		Lines:        lines,
		Total:        snap.Total,
		DisplayTotal: catalog.DisplayPrice(snap.Total),
		ItemCount:    snap.ItemCount,
	}
}
