package routes

import (
	"net/http"

	"staybook/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the booking and payment endpoints. The quote and
// checkout operations are the only entry points the UI layer calls.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, webhookHandler *handlers.PaymentWebhookHandler) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	bookings := r.Group("/api/bookings")
	{
		bookings.POST("/quote", bookingHandler.Quote)
		bookings.POST("/checkout", bookingHandler.Checkout)
	}

	payments := r.Group("/api/payments")
	{
		payments.POST("/webhook", webhookHandler.HandleEvent)
	}
}
