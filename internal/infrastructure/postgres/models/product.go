package models

import "time"

type ProductModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Title         string `gorm:"not null"`
	Price         int64  `gorm:"not null"`
	StockQuantity int    `gorm:"not null;default:0"`
	IsVisible     bool   `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ProductModel) TableName() string { return "products" }

type CartItemModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	UserID    string `gorm:"not null;index"`
	ProductID string `gorm:"type:uuid;not null"`
	Quantity  int    `gorm:"not null"`
	CreatedAt time.Time
}

func (CartItemModel) TableName() string { return "cart_items" }
