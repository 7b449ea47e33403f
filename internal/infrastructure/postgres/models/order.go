package models

import (
	"time"
)

type PendingOrderModel struct {
	ID             string    `gorm:"primaryKey;type:uuid"`
	OrderNo        string    `gorm:"uniqueIndex;not null"`
	UserID         string    `gorm:"not null;index"`
	Subtotal       int64     `gorm:"not null"`
	DiscountAmount int64     `gorm:"not null"`
	ShippingFee    int64     `gorm:"not null"`
	FinalAmount    int64     `gorm:"not null"`
	DiscountCodeID *string   `gorm:"type:uuid"`
	RecipientName  string
	RecipientPhone string
	ContactEmail   string
	ShippingAddr   string
	InvoiceTitle   string
	InvoiceTaxID   string
	Status         string    `gorm:"not null;index:idx_pending_status_expired"`
	ExpiredAt      time.Time `gorm:"not null;index:idx_pending_status_expired"`
	CreatedAt      time.Time

	Items []PendingOrderItemModel `gorm:"foreignKey:PendingOrderID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (PendingOrderModel) TableName() string { return "pending_orders" }

type PendingOrderItemModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	PendingOrderID string `gorm:"type:uuid;not null;index"`
	ProductID      string `gorm:"type:uuid;not null"`
	Title          string `gorm:"not null"`
	UnitPrice      int64  `gorm:"not null"`
	Quantity       int    `gorm:"not null"`
	Subtotal       int64  `gorm:"not null"`
}

func (PendingOrderItemModel) TableName() string { return "pending_order_items" }

type OrderModel struct {
	ID                string  `gorm:"primaryKey;type:uuid"`
	OrderNo           string  `gorm:"uniqueIndex;not null"`
	UserID            string  `gorm:"not null;index"`
	Subtotal          int64   `gorm:"not null"`
	DiscountAmount    int64   `gorm:"not null"`
	ShippingFee       int64   `gorm:"not null"`
	FinalAmount       int64   `gorm:"not null"`
	DiscountCodeID    *string `gorm:"type:uuid"`
	RecipientName     string
	RecipientPhone    string
	ContactEmail      string
	ShippingAddr      string
	InvoiceTitle      string
	InvoiceTaxID      string
	PaymentStatus     string `gorm:"not null"`
	FulfillmentStatus string `gorm:"not null"`
	GatewayTradeNo    string
	PaymentType       string
	PaidAt            time.Time
	CreatedAt         time.Time `gorm:"index:idx_orders_created_at"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (OrderModel) TableName() string { return "orders" }

type OrderItemModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	OrderID   string `gorm:"type:uuid;not null;index"`
	ProductID string `gorm:"type:uuid;not null"`
	Title     string `gorm:"not null"`
	UnitPrice int64  `gorm:"not null"`
	Quantity  int    `gorm:"not null"`
	Subtotal  int64  `gorm:"not null"`
}

func (OrderItemModel) TableName() string { return "order_items" }
