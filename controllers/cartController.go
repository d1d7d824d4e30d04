package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kasir-pos/cart"
	"kasir-pos/catalog"
	"kasir-pos/currency"
	"kasir-pos/notify"
)

func (h *Handler) cartView() gin.H {
	lines := h.Order.Lines()
	subtotal := h.Order.Subtotal()
	return gin.H{
		"items":            lines,
		"count":            len(lines),
		"subtotal":         subtotal,
		"profit":           h.Order.TotalProfit(),
		"subtotal_display": currency.FormatRupiah(subtotal),
	}
}

// GetCart returns the current order with its running totals.
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartView())
}

// AddCartItem resolves the product and adds it to the order.
func (h *Handler) AddCartItem(c *gin.Context) {
	var req struct {
		ProductID int `json:"product_id" binding:"required"`
		Quantity  int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	product, err := h.Catalog.GetProduct(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := h.Order.AddItem(product, req.Quantity); err != nil {
		if errors.Is(err, cart.ErrInsufficientStock) {
			c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock for " + product.Name})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	h.snapshot()
	h.Notifier.Notify(fmt.Sprintf("%s ditambahkan ke keranjang", product.Name), notify.LevelSuccess)
	c.JSON(http.StatusOK, h.cartView())
}

// RemoveCartItem drops one line from the order. Removing an id that is not
// in the cart is not an error.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	h.Order.RemoveItem(id)
	h.snapshot()
	c.JSON(http.StatusOK, h.cartView())
}

// ChangeCartQuantity adjusts a line by a signed delta; hitting zero removes
// the line.
func (h *Handler) ChangeCartQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	// A zero delta is a valid no-op, so no required binding on the field.
	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Order.ChangeQuantity(id, req.Delta)
	h.snapshot()
	c.JSON(http.StatusOK, h.cartView())
}

// ClearCart empties the order.
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.Order.Clear(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Keranjang sudah kosong"})
		return
	}

	h.snapshot()
	h.Notifier.Notify("Keranjang dikosongkan", notify.LevelWarning)
	c.JSON(http.StatusOK, h.cartView())
}
