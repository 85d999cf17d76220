package cart

import (
	"fmt"
	"sync"

	"github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
)

// Item is a cart line. Product and Variant are snapshots taken when the
// line was first added; later catalog edits do not change them.
type Item struct {
	Key      string          `json:"key"`
	Product  catalog.Product `json:"product"`
	Variant  catalog.Variant `json:"variant"`
	Quantity int             `json:"quantity"`
}

// Subtotal is the unrounded line amount.
func (i Item) Subtotal() float64 {
	return i.Variant.Price * float64(i.Quantity)
}

// Key builds the line identity for a product/variant pair.
func Key(productID int64, variantID string) string {
	return fmt.Sprintf("%d-%s", productID, variantID)
}

// Snapshot is a point-in-time view of a cart.
type Snapshot struct {
	Items     []Item  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// Listener is notified with the new state after every mutation.
type Listener func(Snapshot)

// Store is one shopper's cart. Quantities are always at least one.
type Store struct {
	mu        sync.RWMutex
	items     []Item
	listeners []Listener
}

// NewStore creates an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers a listener for cart changes.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Add merges quantity into the line for product/variant, creating it if needed.
// Quantities below one are treated as one.
func (s *Store) Add(product catalog.Product, variant catalog.Variant, quantity int) Item {
	if quantity < 1 {
		quantity = 1
	}
	key := Key(product.ID, variant.ID)

	s.mu.Lock()
	var line Item
	if i := s.index(key); i >= 0 {
		s.items[i].Quantity += quantity
		line = s.items[i]
	} else {
		line = Item{Key: key, Product: product.Clone(), Variant: variant, Quantity: quantity}
		s.items = append(s.items, line)
	}
	line.Product = line.Product.Clone()
	s.mu.Unlock()

	s.notify()
	return line
}

// UpdateQuantity sets the quantity of a line. Zero or less removes it.
// Unknown keys are ignored.
func (s *Store) UpdateQuantity(key string, quantity int) {
	if quantity <= 0 {
		s.Remove(key)
		return
	}

	s.mu.Lock()
	i := s.index(key)
	if i >= 0 {
		s.items[i].Quantity = quantity
	}
	s.mu.Unlock()

	if i >= 0 {
		s.notify()
	}
}

// Remove deletes a line. Unknown keys are ignored.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	i := s.index(key)
	if i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	s.mu.Unlock()

	if i >= 0 {
		s.notify()
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.notify()
}

// Drain returns the cart and empties it under one lock, so a line added
// concurrently lands either in the result or in the cart, never nowhere.
func (s *Store) Drain() Snapshot {
	s.mu.Lock()
	snap := s.snapshot()
	s.items = nil
	s.mu.Unlock()

	if len(snap.Items) > 0 {
		s.notify()
	}
	return snap
}

// Items returns the lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyItems()
}

// Total is the sum of variant price times quantity. It is not rounded.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total()
}

// ItemCount is the sum of quantities across lines.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count()
}

// Snapshot returns items and totals read under one lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) snapshot() Snapshot {
	return Snapshot{Items: s.copyItems(), Total: s.total(), ItemCount: s.count()}
}

func (s *Store) total() float64 {
	var total float64
	for _, it := range s.items {
		total += it.Subtotal()
	}
	return total
}

func (s *Store) count() int {
	var n int
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *Store) copyItems() []Item {
	out := make([]Item, len(s.items))
	for i, it := range s.items {
		it.Product = it.Product.Clone()
		out[i] = it
	}
	return out
}

func (s *Store) index(key string) int {
	for i, it := range s.items {
		if it.Key == key {
			return i
		}
	}
	return -1
}

func (s *Store) notify() {
	s.mu.RLock()
	snap := s.snapshot()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, l := range listeners {
		l(snap)
	}
}
