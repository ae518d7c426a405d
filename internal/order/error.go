package order

import "errors"

var (
	// -- Validation & Input --
	ErrCustomerRequired = errors.New("customer is required")
	ErrNoLines          = errors.New("order must contain at least one line")
	ErrTotalMismatch    = errors.New("order total does not match its lines")
	ErrInvalidStatus    = errors.New("invalid order status")

	// -- Resource State --
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("order status can only move forward one step")
	ErrStatusConflict    = errors.New("order status changed since it was read")

	// -- Checkout --
	ErrCheckoutInFlight = errors.New("a checkout is already in progress for this customer")
)
