package catalog

import (
	"sync"
	"time"
)

// Store owns the product sequence and the hero image. All reads return
// copies; only the store mutates its products.
type Store struct {
	mu       sync.RWMutex
	products []Product
	hero     string
	now      func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the time source used for new product ids.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a store seeded with the given products and hero image.
func NewStore(products []Product, hero string, opts ...StoreOption) *Store {
	s := &Store{
		products: cloneAll(products),
		hero:     hero,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// All returns every product in insertion order.
func (s *Store) All() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.products)
}

// Get returns the product with the given id.
func (s *Store) Get(id int64) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return Product{}, ErrProductNotFound
}

// Add appends a new product built from the draft. The id is the current
// time in milliseconds; two adds within the same millisecond collide.
func (s *Store) Add(d Draft) Product {
	p := d.Product(s.now().UnixMilli())
	normalizeImages(&p)

	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()
	return p.Clone()
}

// Update replaces the product with the same id.
func (s *Store) Update(p Product) (Product, error) {
	p = p.Clone()
	normalizeImages(&p)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return p.Clone(), nil
		}
	}
	return Product{}, ErrProductNotFound
}

// Remove deletes the product and reports whether it existed.
func (s *Store) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// HeroImage returns the homepage banner URL.
func (s *Store) HeroImage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hero
}

// SetHeroImage sets the homepage banner URL.
func (s *Store) SetHeroImage(url string) {
	s.mu.Lock()
	s.hero = url
	s.mu.Unlock()
}

// normalizeImages applies the placeholder and copies the main image onto
// every variant so variant images never drift from the product image.
func normalizeImages(p *Product) {
	if p.ImageURL == "" {
		p.ImageURL = PlaceholderImageURL
	}
	for i := range p.Variants {
		p.Variants[i].ImageURL = p.ImageURL
	}
}

func cloneAll(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
