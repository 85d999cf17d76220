package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
)

// catalogAdapter wraps ServiceContainer for type-safe cross-module communication.
type catalogAdapter struct {
	container mono.ServiceContainer
}

// NewCatalogAdapter creates a new adapter for catalog services.
func NewCatalogAdapter(container mono.ServiceContainer) CatalogPort {
	if container == nil {
		panic("catalog adapter requires non-nil ServiceContainer")
	}
	return &catalogAdapter{container: container}
}

// ListProducts returns a listing page via the list-products service.
func (a *catalogAdapter) ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	var resp ListProductsResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-products",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("list-products service call failed: %w", err))
	}
	return &resp, nil
}

// GetProduct returns a product page via the get-product service.
func (a *catalogAdapter) GetProduct(ctx context.Context, productID int64) (*ProductDetailResponse, error) {
	req := GetProductRequest{ProductID: productID}
	var resp ProductDetailResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-product",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("get-product service call failed: %w", err))
	}
	return &resp, nil
}

// SelectVariant resolves a selection via the select-variant service.
func (a *catalogAdapter) SelectVariant(ctx context.Context, req *SelectVariantRequest) (*SelectVariantResponse, error) {
	var resp SelectVariantResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"select-variant",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("select-variant service call failed: %w", err))
	}
	return &resp, nil
}

// AddProduct creates a product via the add-product service.
func (a *catalogAdapter) AddProduct(ctx context.Context, draft domain.Draft) (*ProductResponse, error) {
	req := AddProductRequest{Draft: draft}
	var resp ProductResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"add-product",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("add-product service call failed: %w", err))
	}
	return &resp, nil
}

// UpdateProduct replaces a product via the update-product service.
func (a *catalogAdapter) UpdateProduct(ctx context.Context, productID int64, draft domain.Draft) (*ProductResponse, error) {
	req := UpdateProductRequest{ProductID: productID, Draft: draft}
	var resp ProductResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"update-product",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, restoreError(fmt.Errorf("update-product service call failed: %w", err))
	}
	return &resp, nil
}

// RemoveProduct deletes a product via the remove-product service.
func (a *catalogAdapter) RemoveProduct(ctx context.Context, productID int64) (bool, error) {
	req := RemoveProductRequest{ProductID: productID}
	var resp RemoveProductResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"remove-product",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return false, restoreError(fmt.Errorf("remove-product service call failed: %w", err))
	}
	return resp.Removed, nil
}

// HeroImage returns the banner via the get-hero-image service.
func (a *catalogAdapter) HeroImage(ctx context.Context) (string, error) {
	req := GetHeroImageRequest{}
	var resp HeroImageResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-hero-image",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return "", restoreError(fmt.Errorf("get-hero-image service call failed: %w", err))
	}
	return resp.ImageURL, nil
}

// SetHeroImage updates the banner via the set-hero-image service.
func (a *catalogAdapter) SetHeroImage(ctx context.Context, imageURL string) (string, error) {
	req := HeroImageRequest{ImageURL: imageURL}
	var resp HeroImageResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"set-hero-image",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return "", restoreError(fmt.Errorf("set-hero-image service call failed: %w", err))
	}
	return resp.ImageURL, nil
}
