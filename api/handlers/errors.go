package handlers

import (
	"errors"
	"net/http"

	"nebula-eats-be/internal/cart"
	"nebula-eats-be/internal/menu"
	"nebula-eats-be/internal/order"
	"nebula-eats-be/internal/payment"
	"nebula-eats-be/internal/user"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses: validation 400,
// decline 402, not-found 404, lifecycle/checkout races 409.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, menu.ErrItemNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		status = http.StatusNotFound

	case errors.Is(err, payment.ErrDeclined):
		status = http.StatusPaymentRequired

	case errors.Is(err, order.ErrStatusConflict),
		errors.Is(err, order.ErrCheckoutInFlight):
		status = http.StatusConflict

	case errors.Is(err, menu.ErrNameRequired),
		errors.Is(err, menu.ErrNegativePrice),
		errors.Is(err, cart.ErrCartEmpty),
		errors.Is(err, cart.ErrCustomerRequired),
		errors.Is(err, order.ErrNoLines),
		errors.Is(err, order.ErrTotalMismatch),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrCustomerRequired),
		errors.Is(err, payment.ErrCardIncomplete),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, user.ErrCredentialsRequired),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidRole):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
