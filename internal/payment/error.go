package payment

import (
	"errors"
	"fmt"
)

var (
	// -- Validation & Input --
	ErrCardIncomplete = errors.New("all card fields are required")
	ErrInvalidAmount  = errors.New("charge amount must be positive")

	// -- Processor Outcome --
	ErrDeclined = errors.New("payment declined")
)

// DeclineError carries the processor's reason for a decline. It wraps
// ErrDeclined so callers can match with errors.Is.
type DeclineError struct {
	Reason string
}

func (e *DeclineError) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Reason)
}

func (e *DeclineError) Unwrap() error {
	return ErrDeclined
}
