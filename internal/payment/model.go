package payment

import "time"

type MethodKind string

const (
	MethodCard MethodKind = "card"
	MethodCash MethodKind = "cash"
)

// Method selects how the customer pays. Card details are required only
// when Kind is MethodCard.
type Method struct {
	Kind MethodKind `json:"kind"`
	Card CardInfo   `json:"card,omitempty"`
}

type CardInfo struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
}

// Complete reports whether all card fields are filled in.
func (c CardInfo) Complete() bool {
	return c.Number != "" && c.Expiry != "" && c.CVC != ""
}

// Receipt is the processor's proof of a successful charge.
type Receipt struct {
	Reference string     `json:"reference"`
	Amount    float64    `json:"amount"`
	Method    MethodKind `json:"method"`
	ChargedAt time.Time  `json:"charged_at"`
}
