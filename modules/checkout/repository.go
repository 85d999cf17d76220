package checkout

import (
	"sync"

	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/order"
)

// OrderRepository provides in-memory order storage.
type OrderRepository struct {
	orders map[string]*domain.Order
	mu     sync.RWMutex
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]*domain.Order),
	}
}

// Save stores an order under its number.
func (r *OrderRepository) Save(o *domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[o.Number] = o
}

// Exists reports whether an order number is taken.
func (r *OrderRepository) Exists(number string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, found := r.orders[number]
	return found
}

// FindByNumber finds an order by number.
func (r *OrderRepository) FindByNumber(number string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, found := r.orders[number]
	if !found {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

// Count returns the number of stored orders.
func (r *OrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
