package catalog

import (
	"context"

	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
)

// ProductView is a product with its resolved list price.
type ProductView struct {
	domain.Product
	FromPrice  float64 `json:"from_price"`
	PriceLabel string  `json:"price_label"`
}

// ListProductsRequest is the request for a listing page. SessionID keys
// the shopper's browse state; a query change resets to page 1 and Page
// is only honoured when the query is unchanged. A missing Page means 1.
type ListProductsRequest struct {
	SessionID string `json:"session_id"`
	Search    string `json:"search"`
	Category  string `json:"category"`
	Sort      string `json:"sort"`
	Page      int    `json:"page"`
}

// ListProductsResponse is one listing page.
type ListProductsResponse struct {
	Products   []ProductView `json:"products"`
	Query      domain.Query  `json:"query"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	TotalItems int           `json:"total_items"`
	Categories []string      `json:"categories"`
}

// GetProductRequest is the request for a single product.
type GetProductRequest struct {
	ProductID int64 `json:"product_id"`
}

// ProductDetailResponse is a product page with its initial selection.
type ProductDetailResponse struct {
	Product      domain.Product      `json:"product"`
	PriceLabel   string              `json:"price_label"`
	Colors       []string            `json:"colors"`
	SizesByColor map[string][]string `json:"sizes_by_color"`
	Selection    domain.Selection    `json:"selection"`
	DisplayImage string              `json:"display_image"`
}

// SelectVariantRequest asks to change the color and/or size selection.
type SelectVariantRequest struct {
	ProductID    int64  `json:"product_id"`
	CurrentColor string `json:"current_color"`
	CurrentSize  string `json:"current_size"`
	Color        string `json:"color"`
	Size         string `json:"size"`
}

// SelectVariantResponse is the resolved selection.
type SelectVariantResponse struct {
	Selection    domain.Selection `json:"selection"`
	Sizes        []string         `json:"sizes"`
	DisplayImage string           `json:"display_image"`
	DisplayPrice string           `json:"display_price,omitempty"`
}

// AddProductRequest is the admin request for a new product.
type AddProductRequest struct {
	Draft domain.Draft `json:"draft"`
}

// UpdateProductRequest is the admin request to replace a product.
type UpdateProductRequest struct {
	ProductID int64        `json:"product_id"`
	Draft     domain.Draft `json:"draft"`
}

// ProductResponse is a saved product. Warnings lists duplicate
// size/color pairs, which are accepted but reported.
type ProductResponse struct {
	Product  domain.Product `json:"product"`
	Warnings []string       `json:"warnings,omitempty"`
}

// RemoveProductRequest is the admin request to delete a product.
type RemoveProductRequest struct {
	ProductID int64 `json:"product_id"`
}

// RemoveProductResponse reports whether a product was deleted.
type RemoveProductResponse struct {
	Removed bool `json:"removed"`
}

// GetHeroImageRequest is the request for the homepage banner.
type GetHeroImageRequest struct{}

// HeroImageRequest sets the homepage banner.
type HeroImageRequest struct {
	ImageURL string `json:"image_url"`
}

// HeroImageResponse is the homepage banner.
type HeroImageResponse struct {
	ImageURL string `json:"image_url"`
}

// CatalogPort defines the interface for catalog operations (hexagonal port).
type CatalogPort interface {
	ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error)
	GetProduct(ctx context.Context, productID int64) (*ProductDetailResponse, error)
	SelectVariant(ctx context.Context, req *SelectVariantRequest) (*SelectVariantResponse, error)
	AddProduct(ctx context.Context, draft domain.Draft) (*ProductResponse, error)
	UpdateProduct(ctx context.Context, productID int64, draft domain.Draft) (*ProductResponse, error)
	RemoveProduct(ctx context.Context, productID int64) (bool, error)
	HeroImage(ctx context.Context) (string, error)
	SetHeroImage(ctx context.Context, imageURL string) (string, error)
}
