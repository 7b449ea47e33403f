package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwellbooks/bookshop-order-service/internal/delivery/http/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(
	r *gin.Engine,
	checkout *handlers.CheckoutHandler,
	payment *handlers.PaymentHandler,
	discount *handlers.DiscountHandler,
	orders *handlers.OrderHandler,
) {
	api := r.Group("/api")
	{
		api.POST("/checkout", checkout.Create)
		api.POST("/discounts/validate", discount.Validate)
		api.POST("/payments/notify", payment.Notify)
		api.POST("/payments/return", payment.Return)
		api.GET("/orders", orders.List)
		api.GET("/orders/:orderNo", orders.Get)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
