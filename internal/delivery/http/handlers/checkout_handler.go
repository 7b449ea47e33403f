package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/inkwellbooks/bookshop-order-service/internal/usecase"
	checkoutdto "github.com/inkwellbooks/bookshop-order-service/internal/usecase/dto/checkout"
)

type CheckoutHandler struct {
	reservationUC usecase.ReservationUsecase
}

func NewCheckoutHandler(reservationUC usecase.ReservationUsecase) *CheckoutHandler {
	return &CheckoutHandler{reservationUC: reservationUC}
}

type checkoutItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type checkoutRequest struct {
	Items          []checkoutItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingFee    int64                 `json:"shipping_fee" binding:"gte=0"`
	FinalAmount    int64                 `json:"final_amount" binding:"gte=0"`
	DiscountCode   string                `json:"discount_code"`
	RecipientName  string                `json:"recipient_name" binding:"required"`
	RecipientPhone string                `json:"recipient_phone" binding:"required"`
	ContactEmail   string                `json:"contact_email" binding:"required,email"`
	ShippingAddr   string                `json:"shipping_addr" binding:"required"`
	InvoiceTitle   string                `json:"invoice_title"`
	InvoiceTaxID   string                `json:"invoice_tax_id"`
}

// Create handles checkout submission. Authentication happens upstream; the
// authenticated user id arrives in the X-User-ID header.
func (h *CheckoutHandler) Create(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]checkoutdto.CheckoutItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = checkoutdto.CheckoutItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	output, err := h.reservationUC.CreateReservation(c.Request.Context(), &checkoutdto.CreateReservationInput{
		UserID:         userID,
		Items:          items,
		ShippingFee:    req.ShippingFee,
		FinalAmount:    req.FinalAmount,
		DiscountCode:   req.DiscountCode,
		RecipientName:  req.RecipientName,
		RecipientPhone: req.RecipientPhone,
		ContactEmail:   req.ContactEmail,
		ShippingAddr:   req.ShippingAddr,
		InvoiceTitle:   req.InvoiceTitle,
		InvoiceTaxID:   req.InvoiceTaxID,
	})
	if err != nil {
		status, body := checkoutError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order_no":   output.PendingOrder.OrderNo,
		"expired_at": output.PendingOrder.ExpiredAt,
		"payment":    output.Payment,
	})
}

func checkoutError(err error) (int, gin.H) {
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		return http.StatusConflict, gin.H{"error": stockErr.Error(), "shortages": stockErr.Shortages}
	}

	switch {
	case errors.Is(err, domain.ErrAmountMismatch),
		errors.Is(err, domain.ErrDiscountAlreadyRedeemed),
		errors.Is(err, domain.ErrDiscountExhausted):
		return http.StatusConflict, gin.H{"error": err.Error()}
	case errors.Is(err, domain.ErrProductUnavailable),
		errors.Is(err, domain.ErrDiscountNotFound),
		errors.Is(err, domain.ErrDiscountNotActive),
		errors.Is(err, domain.ErrDiscountOutsideWindow),
		errors.Is(err, domain.ErrBelowMinimumPurchase):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	default:
		return http.StatusInternalServerError, gin.H{"error": "failed to create reservation"}
	}
}
