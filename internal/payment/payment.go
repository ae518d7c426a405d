package payment

import "context"

// Gateway is the single capability the checkout flow needs from a
// payment processor. The demo ships a simulator; a production
// implementation would call a real processor behind the same interface.
type Gateway interface {
	Charge(ctx context.Context, amount float64, method Method) (*Receipt, error)
}
