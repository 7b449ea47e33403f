package domain

import "time"

type PendingStatus string

const (
	PendingStatusPending PendingStatus = "pending"
)

type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "paid"
)

type FulfillmentStatus string

const (
	FulfillmentStatusPending FulfillmentStatus = "pending"
)

// PendingOrder is a time-boxed checkout reservation awaiting payment
// confirmation. It is never mutated after creation: it is either converted
// into a permanent Order by finalization or deleted by the expiry sweep.
type PendingOrder struct {
	ID             string
	OrderNo        string
	UserID         string
	Subtotal       int64
	DiscountAmount int64
	ShippingFee    int64
	FinalAmount    int64
	DiscountCodeID *string
	RecipientName  string
	RecipientPhone string
	ContactEmail   string
	ShippingAddr   string
	InvoiceTitle   string
	InvoiceTaxID   string
	Status         PendingStatus
	ExpiredAt      time.Time
	CreatedAt      time.Time
	Items          []PendingOrderItem
}

// PendingOrderItem snapshots price and title at checkout time.
type PendingOrderItem struct {
	ID        string
	ProductID string
	Title     string
	UnitPrice int64
	Quantity  int
	Subtotal  int64
}

// Order is the permanent counterpart of a PendingOrder, created exactly once
// per order number. Item prices and titles are copied verbatim from the
// reservation, never re-derived from live product data.
type Order struct {
	ID                string
	OrderNo           string
	UserID            string
	Subtotal          int64
	DiscountAmount    int64
	ShippingFee       int64
	FinalAmount       int64
	DiscountCodeID    *string
	RecipientName     string
	RecipientPhone    string
	ContactEmail      string
	ShippingAddr      string
	InvoiceTitle      string
	InvoiceTaxID      string
	PaymentStatus     PaymentStatus
	FulfillmentStatus FulfillmentStatus
	GatewayTradeNo    string
	PaymentType       string
	PaidAt            time.Time
	CreatedAt         time.Time
	Items             []OrderItem
}

type OrderItem struct {
	ID        string
	ProductID string
	Title     string
	UnitPrice int64
	Quantity  int
	Subtotal  int64
}
