package handlers

import (
	"net/http"

	"nebula-eats-be/internal/menu"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService menu.Service
}

func NewMenuHandler(menuService menu.Service) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

type addMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Available   *bool   `json:"available"`
}

type setAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// GET /api/menu
func (h *MenuHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.menuService.List(c.Request.Context())})
}

// POST /api/admin/menu
func (h *MenuHandler) AddItem(c *gin.Context) {
	var req addMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.menuService.AddItem(c.Request.Context(), menu.NewItemParams{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		Available:   req.Available,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": item})
}

// PATCH /api/admin/menu/:id/availability
func (h *MenuHandler) SetAvailability(c *gin.Context) {
	var req setAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.menuService.SetAvailability(c.Request.Context(), c.Param("id"), *req.Available); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}

// DELETE /api/admin/menu/:id
func (h *MenuHandler) RemoveItem(c *gin.Context) {
	if err := h.menuService.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "menu item removed"})
}
