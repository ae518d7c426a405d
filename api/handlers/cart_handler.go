package handlers

import (
	"net/http"

	"nebula-eats-be/internal/cart"
	"nebula-eats-be/internal/menu"
	"nebula-eats-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService cart.Service
	menuService menu.Service
}

func NewCartHandler(cartService cart.Service, menuService menu.Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		menuService: menuService,
	}
}

type addToCartRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type updateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, gin.H{
		"items":      h.cartService.Items(ctx, u.Username),
		"total":      h.cartService.Total(ctx, u.Username),
		"item_count": h.cartService.ItemCount(ctx, u.Username),
	})
}

// POST /api/cart/items
// Adding an unavailable item is a silent no-op, mirroring the disabled
// button in the storefront; the response carries the unchanged cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.menuService.Get(ctx, req.ItemID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.cartService.Add(ctx, u.Username, item); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      h.cartService.Items(ctx, u.Username),
		"total":      h.cartService.Total(ctx, u.Username),
		"item_count": h.cartService.ItemCount(ctx, u.Username),
	})
}

// PATCH /api/cart/items/:item_id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.cartService.UpdateQuantity(ctx, u.Username, c.Param("item_id"), req.Delta); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      h.cartService.Items(ctx, u.Username),
		"total":      h.cartService.Total(ctx, u.Username),
		"item_count": h.cartService.ItemCount(ctx, u.Username),
	})
}

// DELETE /api/cart
func (h *CartHandler) Clear(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	if err := h.cartService.Clear(c.Request.Context(), u.Username); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
