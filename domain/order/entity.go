package order

import (
	"errors"
	"time"
)

// ErrOrderNotFound is returned when no order has the requested number.
var ErrOrderNotFound = errors.New("order not found")

// Line is a purchased cart line, copied at checkout.
type Line struct {
	Key         string  `json:"key"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	VariantID   string  `json:"variant_id"`
	Size        string  `json:"size,omitempty"`
	Color       string  `json:"color,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Order is a placed order. Amounts are kept unrounded.
type Order struct {
	Number    string    `json:"number"`
	SessionID string    `json:"session_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Lines     []Line    `json:"lines"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"item_count"`
	PlacedAt  time.Time `json:"placed_at"`
}
