package cart

import "errors"

var (
	// -- Validation & Input --
	ErrCustomerRequired = errors.New("customer is required")

	// -- Resource State --
	ErrCartEmpty = errors.New("cart is empty")
)
