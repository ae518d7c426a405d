package cart

import (
	"nebula-eats-be/internal/menu"
)

// CartItem is a menu item snapshot plus a quantity. The snapshot is
// taken at add time; later catalog edits do not affect it.
type CartItem struct {
	Item     menu.MenuItem `json:"item"`
	Quantity int           `json:"quantity"`
}

// Subtotal is the line price, price times quantity.
func (c CartItem) Subtotal() float64 {
	return c.Item.Price * float64(c.Quantity)
}
