package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetAvailableCourts(c *ginext.Context)
	CreatePaymentIntent(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
	GetBookingStatus(c *ginext.Context)
	GetPaymentStatus(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Clubs
		api.GET("/clubs/:id/available-courts", h.GetAvailableCourts)
		api.GET("/clubs/:id/payment-status", h.GetPaymentStatus)

		// Bookings
		api.POST("/bookings/payment-intents", h.CreatePaymentIntent)
		api.GET("/bookings/:id/status", h.GetBookingStatus)
	}

	// Колбэк шлюза живёт вне /api: URL фиксируется в подписанном инвойсе
	router.POST("/webhooks/payment-gateway", h.PaymentWebhook)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
