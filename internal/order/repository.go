package order

import (
	"sync"
)

// Repository is the append-only order store. Orders progress through
// the status lifecycle but are never removed.
type Repository interface {
	Insert(o Order)
	Get(id string) (Order, bool)
	List() []Order
	// CompareAndSwapStatus overwrites the order's status only when the
	// current status equals expected. The store is left unchanged when
	// the id is absent or the precondition fails.
	CompareAndSwapStatus(id string, expected, next OrderStatus) (Order, error)
}

type memoryRepository struct {
	mu     sync.RWMutex
	orders []Order
}

// NewRepository creates an empty in-memory order store.
func NewRepository() Repository {
	return &memoryRepository{}
}

// Insert prepends, keeping the most recent order at the head.
func (r *memoryRepository) Insert(o Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append([]Order{o}, r.orders...)
}

func (r *memoryRepository) Get(id string) (Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return Order{}, false
}

func (r *memoryRepository) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func (r *memoryRepository) CompareAndSwapStatus(id string, expected, next OrderStatus) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}
		if r.orders[i].Status != expected {
			return Order{}, ErrStatusConflict
		}
		r.orders[i].Status = next
		return cloneOrder(r.orders[i]), nil
	}
	return Order{}, ErrOrderNotFound
}

// cloneOrder deep-copies the line items so callers can never mutate
// stored state through a returned order.
func cloneOrder(o Order) Order {
	out := o
	out.Items = append(o.Items[:0:0], o.Items...)
	return out
}
