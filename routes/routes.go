package routes

import (
	"kasir-pos/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, h *controllers.Handler) {
	api := router.Group("/api")
	{
		// Product routes
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProductByID)

		// Cart routes
		api.GET("/cart", h.GetCart)
		api.POST("/cart/items", h.AddCartItem)
		api.PATCH("/cart/items/:id", h.ChangeCartQuantity)
		api.DELETE("/cart/items/:id", h.RemoveCartItem)
		api.DELETE("/cart", h.ClearCart)

		// Checkout and history routes
		api.POST("/checkout", h.Checkout)
		api.GET("/transactions", h.ListTransactions)
		api.GET("/transactions/by-date", h.GetTransactionsByDate)
		api.GET("/receipts/:id", h.GetReceipt)

		// Statistics routes
		api.GET("/stats/daily", h.GetDailyStats)
	}
}
