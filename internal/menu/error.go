package menu

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired  = errors.New("menu item name is required")
	ErrNegativePrice = errors.New("menu item price must not be negative")

	// -- Resource State --
	ErrItemNotFound = errors.New("menu item not found")
)
