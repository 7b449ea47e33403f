package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkwellbooks/bookshop-order-service/internal/usecase"
)

type DiscountHandler struct {
	discountUC usecase.DiscountUsecase
}

func NewDiscountHandler(discountUC usecase.DiscountUsecase) *DiscountHandler {
	return &DiscountHandler{discountUC: discountUC}
}

type validateDiscountRequest struct {
	Code     string `json:"code" binding:"required"`
	Subtotal int64  `json:"subtotal" binding:"required,gt=0"`
}

// Validate computes the discount a code would yield for a subtotal. It never
// mutates usage state; actual redemption happens inside finalization.
func (h *DiscountHandler) Validate(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return
	}

	var req validateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.discountUC.Validate(c.Request.Context(), req.Code, userID, req.Subtotal, time.Now())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"valid":   false,
			"code":    req.Code,
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":           true,
		"code":            quote.Code,
		"type":            quote.Type,
		"discount_amount": quote.Amount,
	})
}
