package api

import (
	"time"

	"github.com/rohit-kumar-in/Arvind-Trader/domain/page"
)

// AddCartItemRequest is the HTTP request for adding to the cart. A missing
// quantity adds one.
type AddCartItemRequest struct {
	ProductID int64  `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  *int   `json:"quantity,omitempty"`
}

// UpdateCartItemRequest is the HTTP request for changing a line quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest is the HTTP checkout form.
type CheckoutRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ContactRequest is the HTTP contact form.
type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Requirement string `json:"requirement"`
}

// LoginRequest is the HTTP admin login form.
type LoginRequest struct {
	Secret string `json:"secret"`
}

// HeroRequest is the HTTP request for changing the homepage banner.
type HeroRequest struct {
	ImageURL string `json:"image_url"`
}

// HeroResponse is the HTTP response for the homepage banner.
type HeroResponse struct {
	ImageURL string `json:"image_url"`
}

// UploadResponse carries an uploaded image as a data URI.
type UploadResponse struct {
	ImageURL    string `json:"image_url"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

// PageResponse is the parsed route and metadata for a storefront path.
type PageResponse struct {
	Route page.Route `json:"route"`
	Path  string     `json:"path"`
	Meta  page.Meta  `json:"meta"`
}

// CartFeedMessage is pushed to websocket clients when their cart changes.
type CartFeedMessage struct {
	Type         string         `json:"type"`
	SessionID    string         `json:"session_id"`
	Lines        []CartFeedLine `json:"lines"`
	Total        float64        `json:"total"`
	DisplayTotal string         `json:"display_total"`
	ItemCount    int            `json:"item_count"`
	ChangedAt    time.Time      `json:"changed_at"`
}

// CartFeedLine is one line in a CartFeedMessage.
type CartFeedLine struct {
	Key         string  `json:"key"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	VariantID   string  `json:"variant_id"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
