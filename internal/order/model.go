package order

import (
	"time"

	"nebula-eats-be/internal/cart"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
)

// Next returns the immediate successor in the linear lifecycle
// PENDING → PREPARING → READY → DELIVERED. The second result is false
// for DELIVERED (terminal) and for unknown statuses.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusDelivered, true
	}
	return "", false
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

// Order is a finalized purchase. Items are cart snapshots frozen at
// placement; only Status changes afterward, and orders are never
// deleted.
type Order struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Items        []cart.CartItem `json:"items"`
	Total        float64         `json:"total"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}
