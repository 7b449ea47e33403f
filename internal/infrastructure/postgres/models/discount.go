package models

import "time"

type DiscountCodeModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	Code        string    `gorm:"uniqueIndex;not null"`
	Type        string    `gorm:"not null"`
	Value       int64     `gorm:"not null"`
	StartsAt    time.Time `gorm:"not null"`
	EndsAt      time.Time `gorm:"not null"`
	MinPurchase int64     `gorm:"not null;default:0"`
	UsageLimit  int       `gorm:"not null;default:0"`
	UsedCount   int       `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DiscountCodeModel) TableName() string { return "discount_codes" }

type DiscountCodeUsageModel struct {
	ID             string    `gorm:"primaryKey;type:uuid"`
	DiscountCodeID string    `gorm:"type:uuid;not null;uniqueIndex:idx_usage_code_user"`
	UserID         string    `gorm:"not null;uniqueIndex:idx_usage_code_user"`
	OrderNo        string    `gorm:"not null"`
	UsedAt         time.Time `gorm:"not null"`
}

func (DiscountCodeUsageModel) TableName() string { return "discount_code_usages" }
