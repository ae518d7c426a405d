package cart

import (
	"context"
	"sync"

	"nebula-eats-be/internal/logger"
	"nebula-eats-be/internal/menu"

	"go.uber.org/zap"
)

// Service defines the business logic for per-customer carts. Carts are
// session-scoped: there is no persistence and no sharing across
// customers.
type Service interface {
	Add(ctx context.Context, customer string, item menu.MenuItem) error
	UpdateQuantity(ctx context.Context, customer, itemID string, delta int) error
	Items(ctx context.Context, customer string) []CartItem
	Total(ctx context.Context, customer string) float64
	ItemCount(ctx context.Context, customer string) int
	Clear(ctx context.Context, customer string) error
}

type service struct {
	mu    sync.RWMutex
	lines map[string][]CartItem // customer -> cart lines
}

// NewService creates a new cart service.
func NewService() Service {
	return &service{lines: make(map[string][]CartItem)}
}

// Add puts one unit of item into the customer's cart. Unavailable items
// are ignored without error, mirroring the disabled add-to-cart
// affordance in the storefront. Adding an item already in the cart
// increments its quantity.
func (s *service) Add(ctx context.Context, customer string, item menu.MenuItem) error {
	if customer == "" {
		return ErrCustomerRequired
	}
	if !item.Available {
		logger.FromCtx(ctx).Debug("ignored unavailable item",
			zap.String("customer", customer),
			zap.String("item_id", item.ID),
		)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.lines[customer]
	for i := range lines {
		if lines[i].Item.ID == item.ID {
			lines[i].Quantity++
			return nil
		}
	}

	s.lines[customer] = append(lines, CartItem{Item: item, Quantity: 1})
	return nil
}

// UpdateQuantity adds delta to the matching line's quantity, floored at
// zero. A line reaching zero is removed. Unknown item ids are ignored.
func (s *service) UpdateQuantity(ctx context.Context, customer, itemID string, delta int) error {
	if customer == "" {
		return ErrCustomerRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.lines[customer]
	out := lines[:0]
	for _, line := range lines {
		if line.Item.ID == itemID {
			line.Quantity += delta
			if line.Quantity < 0 {
				line.Quantity = 0
			}
		}
		if line.Quantity > 0 {
			out = append(out, line)
		}
	}
	s.lines[customer] = out
	return nil
}

// Items returns a snapshot copy of the customer's cart lines.
func (s *service) Items(ctx context.Context, customer string) []CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.lines[customer]
	out := make([]CartItem, len(lines))
	copy(out, lines)
	return out
}

// Total sums price times quantity over all lines.
func (s *service) Total(ctx context.Context, customer string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, line := range s.lines[customer] {
		total += line.Subtotal()
	}
	return total
}

// ItemCount sums quantities over all lines.
func (s *service) ItemCount(ctx context.Context, customer string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	for _, line := range s.lines[customer] {
		count += line.Quantity
	}
	return count
}

// Clear empties the customer's cart, invoked after a successful
// checkout.
func (s *service) Clear(ctx context.Context, customer string) error {
	if customer == "" {
		return ErrCustomerRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.lines, customer)
	return nil
}
