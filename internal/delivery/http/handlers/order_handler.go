package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/inkwellbooks/bookshop-order-service/internal/usecase/order"
)

type OrderHandler struct {
	orderUC order.OrderUsecase
}

func NewOrderHandler(orderUC order.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

type orderItemResponse struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type orderResponse struct {
	OrderNo           string              `json:"order_no"`
	Subtotal          int64               `json:"subtotal"`
	DiscountAmount    int64               `json:"discount_amount"`
	ShippingFee       int64               `json:"shipping_fee"`
	FinalAmount       int64               `json:"final_amount"`
	PaymentStatus     string              `json:"payment_status"`
	FulfillmentStatus string              `json:"fulfillment_status"`
	PaidAt            string              `json:"paid_at"`
	Items             []orderItemResponse `json:"items"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemResponse{
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		}
	}
	return orderResponse{
		OrderNo:           o.OrderNo,
		Subtotal:          o.Subtotal,
		DiscountAmount:    o.DiscountAmount,
		ShippingFee:       o.ShippingFee,
		FinalAmount:       o.FinalAmount,
		PaymentStatus:     string(o.PaymentStatus),
		FulfillmentStatus: string(o.FulfillmentStatus),
		PaidAt:            o.PaidAt.Format(time.RFC3339),
		Items:             items,
	}
}

// Get returns one finalized order. Only the buyer can see it.
func (h *OrderHandler) Get(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	found, err := h.orderUC.GetOrderByOrderNo(c.Request.Context(), c.Param("orderNo"))
	if err != nil || found.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(found))
}

// List returns the caller's finalized orders, newest first.
func (h *OrderHandler) List(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, total, err := h.orderUC.ListUserOrders(c.Request.Context(), userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	c.JSON(http.StatusOK, gin.H{"orders": out, "total": total})
}
