package models

import "time"

// PaymentTransactionModel rows are inserted once per gateway callback and
// never updated.
type PaymentTransactionModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	OrderNo     string `gorm:"not null;index"`
	TradeNo     string
	Amount      int64  `gorm:"not null"`
	Status      string `gorm:"not null"`
	PaymentType string
	Success     bool `gorm:"not null"`
	RawMessage  string
	CreatedAt   time.Time
}

func (PaymentTransactionModel) TableName() string { return "payment_transactions" }
