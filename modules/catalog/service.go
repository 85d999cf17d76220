package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-monolith/mono"
	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
	"github.com/rohit-kumar-in/Arvind-Trader/events"
	"github.com/rohit-kumar-in/Arvind-Trader/validation"
)

// listProducts handles the list-products service request.
func (m *CatalogModule) listProducts(_ context.Context, req ListProductsRequest, _ *mono.Msg) (ListProductsResponse, error) {
	all := m.store.All()

	m.mu.Lock()
	s, ok := m.browse[req.SessionID]
	if !ok {
		s = &browseSession{Browse: domain.NewBrowse()}
		m.browse[req.SessionID] = s
	}
	s.touched = m.now()
	b := &s.Browse
	changed := b.Apply(domain.Query{
		Search:   req.Search,
		Category: req.Category,
		Sort:     domain.SortOrder(req.Sort),
	})
	if !changed {
		b.GoTo(max(req.Page, 1))
	}
	page := b.View(all)
	query := b.Query
	m.mu.Unlock()

	views := make([]ProductView, len(page.Items))
	for i, p := range page.Items {
		views[i] = toView(p)
	}

	return ListProductsResponse{
		Products:   views,
		Query:      query,
		Page:       page.Number,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
		Categories: domain.Categories(all),
	}, nil
}

// getProduct handles the get-product service request.
func (m *CatalogModule) getProduct(_ context.Context, req GetProductRequest, _ *mono.Msg) (ProductDetailResponse, error) {
	p, err := m.store.Get(req.ProductID)
	if err != nil {
		return ProductDetailResponse{}, err
	}

	sel := domain.InitialSelection(p)
	sizes := make(map[string][]string)
	for _, c := range domain.Colors(p) {
		sizes[c] = domain.SizesFor(p, c)
	}

	return ProductDetailResponse{
		Product:      p,
		PriceLabel:   domain.PriceLabel(p),
		Colors:       domain.Colors(p),
		SizesByColor: sizes,
		Selection:    sel,
		DisplayImage: domain.ResolveDisplayImage(p, sel.Variant),
	}, nil
}

// selectVariant handles the select-variant service request.
func (m *CatalogModule) selectVariant(_ context.Context, req SelectVariantRequest, _ *mono.Msg) (SelectVariantResponse, error) {
	p, err := m.store.Get(req.ProductID)
	if err != nil {
		return SelectVariantResponse{}, err
	}

	current := domain.SelectVariant(p, domain.InitialSelection(p), req.CurrentColor, req.CurrentSize)
	sel := domain.SelectVariant(p, current, req.Color, req.Size)

	resp := SelectVariantResponse{
		Selection:    sel,
		Sizes:        domain.SizesFor(p, sel.Color),
		DisplayImage: domain.ResolveDisplayImage(p, sel.Variant),
	}
	if sel.Valid() {
		resp.DisplayPrice = domain.DisplayPrice(sel.Variant.Price)
	}
	return resp, nil
}

// addProduct handles the add-product service request.
func (m *CatalogModule) addProduct(_ context.Context, req AddProductRequest, _ *mono.Msg) (ProductResponse, error) {
	if err := m.validateDraft(req.Draft); err != nil {
		return ProductResponse{}, err
	}

	m.editMu.Lock()
	p := m.store.Add(req.Draft)
	m.writer.SaveCatalog(m.store.All())
	m.editMu.Unlock()
	m.publishSaved(p, true)

	m.logger.Info("Product added", "id", p.ID, "name", p.Name)
	return ProductResponse{Product: p, Warnings: duplicateWarnings(p)}, nil
}

// updateProduct handles the update-product service request.
func (m *CatalogModule) updateProduct(_ context.Context, req UpdateProductRequest, _ *mono.Msg) (ProductResponse, error) {
	if err := m.validateDraft(req.Draft); err != nil {
		return ProductResponse{}, err
	}

	m.editMu.Lock()
	p, err := m.store.Update(req.Draft.Product(req.ProductID))
	if err != nil {
		m.editMu.Unlock()
		return ProductResponse{}, err
	}
	m.writer.SaveCatalog(m.store.All())
	m.editMu.Unlock()
	m.publishSaved(p, false)

	m.logger.Info("Product updated", "id", p.ID, "name", p.Name)
	return ProductResponse{Product: p, Warnings: duplicateWarnings(p)}, nil
}

// removeProduct handles the remove-product service request. Removing an
// unknown product is not an error.
func (m *CatalogModule) removeProduct(_ context.Context, req RemoveProductRequest, _ *mono.Msg) (RemoveProductResponse, error) {
	m.editMu.Lock()
	if !m.store.Remove(req.ProductID) {
		m.editMu.Unlock()
		return RemoveProductResponse{Removed: false}, nil
	}
	m.writer.SaveCatalog(m.store.All())
	m.editMu.Unlock()

	if m.eventBus != nil {
		if err := events.ProductRemovedV1.Publish(m.eventBus, events.ProductRemovedEvent{
			ProductID: req.ProductID,
			RemovedAt: time.Now(),
		}, nil); err != nil {
			m.logger.Warn("Failed to publish ProductRemoved", "error", err)
		}
	}

	m.logger.Info("Product removed", "id", req.ProductID)
	return RemoveProductResponse{Removed: true}, nil
}

// getHeroImage handles the get-hero-image service request.
func (m *CatalogModule) getHeroImage(_ context.Context, _ GetHeroImageRequest, _ *mono.Msg) (HeroImageResponse, error) {
	return HeroImageResponse{ImageURL: m.store.HeroImage()}, nil
}

// setHeroImage handles the set-hero-image service request.
func (m *CatalogModule) setHeroImage(_ context.Context, req HeroImageRequest, _ *mono.Msg) (HeroImageResponse, error) {
	url := strings.TrimSpace(req.ImageURL)
	if url == "" {
		return HeroImageResponse{}, ErrInvalidImage
	}

	m.editMu.Lock()
	m.store.SetHeroImage(url)
	m.writer.SaveHeroImage(url)
	m.editMu.Unlock()

	if m.eventBus != nil {
		if err := events.HeroImageChangedV1.Publish(m.eventBus, events.HeroImageChangedEvent{
			ImageURL:  url,
			ChangedAt: time.Now(),
		}, nil); err != nil {
			m.logger.Warn("Failed to publish HeroImageChanged", "error", err)
		}
	}
	return HeroImageResponse{ImageURL: url}, nil
}

func (m *CatalogModule) validateDraft(d domain.Draft) error {
	if err := m.validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidProduct, validation.Describe(err))
	}
	return nil
}

func (m *CatalogModule) publishSaved(p domain.Product, created bool) {
	if m.eventBus == nil {
		return
	}
	if err := events.ProductSavedV1.Publish(m.eventBus, events.ProductSavedEvent{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Created:   created,
		SavedAt:   time.Now(),
	}, nil); err != nil {
		m.logger.Warn("Failed to publish ProductSaved", "error", err)
	}
}

func toView(p domain.Product) ProductView {
	return ProductView{
		Product:    p,
		FromPrice:  domain.ResolvePrice(p),
		PriceLabel: domain.PriceLabel(p),
	}
}

func duplicateWarnings(p domain.Product) []string {
	var out []string
	for _, pair := range p.DuplicateVariantPairs() {
		out = append(out, "duplicate variant "+pair)
	}
	return out
}
