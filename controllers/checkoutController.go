package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kasir-pos/cart"
	"kasir-pos/checkout"
	"kasir-pos/currency"
	"kasir-pos/middleware"
	"kasir-pos/notify"
	"kasir-pos/receipt"
)

// Checkout finalizes the current order. On success the cart is already
// reset; on a persistence failure the cart is left intact for retry.
func (h *Handler) Checkout(c *gin.Context) {
	txn, err := h.CheckoutSvc.Checkout(h.Order)
	if err != nil {
		var perr *checkout.PersistenceError
		switch {
		case errors.Is(err, cart.ErrEmptyOrder):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Keranjang kosong"})
		case errors.As(err, &perr):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save transaction, cart kept: " + perr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	middleware.CheckoutsTotal.Inc()
	middleware.CheckoutRevenue.Add(txn.Total)
	h.Notifier.Notify(fmt.Sprintf("Transaksi #%d berhasil!", txn.ID), notify.LevelSuccess)

	c.JSON(http.StatusCreated, gin.H{
		"transaction":   txn,
		"total_display": currency.FormatRupiah(txn.Total),
	})
}

// ListTransactions retrieves the whole transaction log.
func (h *Handler) ListTransactions(c *gin.Context) {
	history, err := h.CheckoutSvc.Transactions()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetTransactionsByDate filters the log to one day.
func (h *Handler) GetTransactionsByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date parameter"})
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	history, err := h.CheckoutSvc.TransactionsByDate(date)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetReceipt renders the thermal receipt for a past transaction.
func (h *Handler) GetReceipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return
	}

	txn, found, err := h.CheckoutSvc.TransactionByID(id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	c.String(http.StatusOK, receipt.Render(receipt.DefaultHeader, txn))
}

// GetDailyStats returns either one day's aggregate (?date=) or the whole
// per-day map.
func (h *Handler) GetDailyStats(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		stats, err := h.CheckoutSvc.DailyStats()
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
		return
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	day, found, err := h.CheckoutSvc.StatsFor(date)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "No sales recorded on " + date})
		return
	}
	c.JSON(http.StatusOK, day)
}
