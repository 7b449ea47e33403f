package domain

import "time"

type DiscountType string

const (
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypePercentage DiscountType = "percentage"
)

type DiscountCode struct {
	ID          string
	Code        string
	Type        DiscountType
	Value       int64 // cents for fixed, percent points for percentage
	StartsAt    time.Time
	EndsAt      time.Time
	MinPurchase int64
	UsageLimit  int // 0 = unlimited
	UsedCount   int
	IsActive    bool
}

// Amount computes the discount for a given subtotal in cents.
func (d *DiscountCode) Amount(subtotal int64) int64 {
	if d.Type == DiscountTypePercentage {
		return subtotal * d.Value / 100
	}
	return d.Value
}

// Validate applies the stateless redemption rules: validity window, active
// flag, global usage cap, minimum purchase. Per-user redemption is checked
// separately against the usage table.
func (d *DiscountCode) Validate(subtotal int64, now time.Time) error {
	if now.Before(d.StartsAt) || !now.Before(d.EndsAt) {
		return ErrDiscountOutsideWindow
	}
	if !d.IsActive {
		return ErrDiscountNotActive
	}
	if d.UsageLimit > 0 && d.UsedCount >= d.UsageLimit {
		return ErrDiscountExhausted
	}
	if subtotal < d.MinPurchase {
		return ErrBelowMinimumPurchase
	}
	return nil
}

// DiscountCodeUsage records a single redemption. A unique constraint on
// (discount_code_id, user_id) enforces one redemption per user per code.
type DiscountCodeUsage struct {
	ID             string
	DiscountCodeID string
	UserID         string
	OrderNo        string
	UsedAt         time.Time
}

// DiscountQuote is the computed outcome of a successful validation.
type DiscountQuote struct {
	Code           string
	DiscountCodeID string
	Type           DiscountType
	Amount         int64
}
