package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// CartChangedEvent carries a session's cart after any mutation.
type CartChangedEvent struct {
	SessionID string         `json:"session_id"`
	Lines     []CartLineInfo `json:"lines"`
	Total     float64        `json:"total"`
	ItemCount int            `json:"item_count"`
	ChangedAt time.Time      `json:"changed_at"`
}

// CartLineInfo is the event view of one cart line.
type CartLineInfo struct {
	Key         string  `json:"key"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	VariantID   string  `json:"variant_id"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// CartChangedV1 is the typed event definition for cart changes.
// Subject: events.cart.v1.cart-changed
var CartChangedV1 = helper.EventDefinition[CartChangedEvent](
	"cart", "CartChanged", "v1",
)
