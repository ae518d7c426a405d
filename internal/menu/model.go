package menu

// MenuItem is a purchasable catalog entry. It is always handled by value:
// carts and orders keep their own copies, so later catalog edits or
// removals never reach back into them.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}

type NewItemParams struct {
	Name        string
	Price       float64
	Description string
	Image       string
	Category    string
	Available   *bool
}
