package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwellbooks/bookshop-order-service/internal/config"
	"github.com/inkwellbooks/bookshop-order-service/internal/usecase/order"
	orderdto "github.com/inkwellbooks/bookshop-order-service/internal/usecase/dto/order"
)

type PaymentHandler struct {
	orderUC  order.OrderUsecase
	frontend config.Frontend
}

func NewPaymentHandler(orderUC order.OrderUsecase, frontend config.Frontend) *PaymentHandler {
	return &PaymentHandler{orderUC: orderUC, frontend: frontend}
}

// Notify handles the gateway's asynchronous server-to-server callback. The
// gateway redelivers anything it considers unacknowledged, so this endpoint
// acknowledges on every path; rejected payloads are dropped internally.
func (h *PaymentHandler) Notify(c *gin.Context) {
	input := &orderdto.GatewayNotificationInput{
		TradeInfo: c.PostForm("TradeInfo"),
		TradeSha:  c.PostForm("TradeSha"),
	}

	h.orderUC.ProcessGatewayNotification(c.Request.Context(), input)

	c.String(http.StatusOK, "1|OK")
}

// Return handles the browser redirect back from the gateway. It decodes the
// result to pick a redirect target and mutates nothing; reconciliation
// happens only on the notify channel.
func (h *PaymentHandler) Return(c *gin.Context) {
	result, err := h.orderUC.DecodeReturnResult(c.PostForm("TradeInfo"))
	if err != nil || !result.Succeeded() {
		c.Redirect(http.StatusFound, h.frontend.PayFailureURL)
		return
	}
	c.Redirect(http.StatusFound, h.frontend.PaySuccessURL+"?order_no="+result.OrderNo)
}
