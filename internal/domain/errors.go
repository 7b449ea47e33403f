package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProductUnavailable      = errors.New("product not found or not visible")
	ErrAmountMismatch          = errors.New("final amount does not match subtotal - discount + shipping")
	ErrDiscountNotFound        = errors.New("discount code not found")
	ErrDiscountNotActive       = errors.New("discount code is disabled")
	ErrDiscountOutsideWindow   = errors.New("discount code is outside its validity window")
	ErrDiscountExhausted       = errors.New("discount code usage limit reached")
	ErrBelowMinimumPurchase    = errors.New("subtotal below discount minimum purchase")
	ErrDiscountAlreadyRedeemed = errors.New("discount code already redeemed by this user")
	ErrMalformedGatewayPayload = errors.New("malformed gateway payload")
	ErrReservationNotFound     = errors.New("no matching pending order")
	ErrReservationAlreadyTaken = errors.New("pending order already finalized or expired")
	ErrOrderNotFound           = errors.New("order not found")
)

// StockShortage reports the shortfall for a single requested item.
type StockShortage struct {
	ProductID string `json:"product_id"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// InsufficientStockError carries the per-item shortfalls of a rejected checkout.
type InsufficientStockError struct {
	Shortages []StockShortage
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %d item(s)", len(e.Shortages))
}
