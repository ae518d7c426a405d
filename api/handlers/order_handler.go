package handlers

import (
	"net/http"

	"nebula-eats-be/internal/middleware"
	"nebula-eats-be/internal/order"
	"nebula-eats-be/internal/payment"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService order.Service
}

func NewOrderHandler(orderService order.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type checkoutRequest struct {
	Method struct {
		Kind string `json:"kind" binding:"required,oneof=card cash"`
		Card struct {
			Number string `json:"number"`
			Expiry string `json:"expiry"`
			CVC    string `json:"cvc"`
		} `json:"card"`
	} `json:"method" binding:"required"`
}

type advanceRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// POST /api/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method := payment.Method{
		Kind: payment.MethodKind(req.Method.Kind),
		Card: payment.CardInfo{
			Number: req.Method.Card.Number,
			Expiry: req.Method.Card.Expiry,
			CVC:    req.Method.Card.CVC,
		},
	}

	o, receipt, err := h.orderService.Checkout(c.Request.Context(), u.Username, method)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":   o,
		"receipt": receipt,
	})
}

// GET /api/orders
func (h *OrderHandler) History(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	c.JSON(http.StatusOK, gin.H{
		"data": h.orderService.History(c.Request.Context(), u.Username),
	})
}

// GET /api/admin/orders/kitchen
func (h *OrderHandler) KitchenQueue(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.orderService.KitchenQueue(c.Request.Context()),
	})
}

// GET /api/admin/orders/delivery
func (h *OrderHandler) DeliveryQueue(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.orderService.DeliveryQueue(c.Request.Context()),
	})
}

// POST /api/admin/orders/:id/advance
// The caller states the status it observed; a stale read comes back as
// a conflict instead of silently clobbering another operator's move.
func (h *OrderHandler) Advance(c *gin.Context) {
	var req advanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.orderService.Advance(
		c.Request.Context(),
		c.Param("id"),
		order.OrderStatus(req.From),
		order.OrderStatus(req.To),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": o})
}
