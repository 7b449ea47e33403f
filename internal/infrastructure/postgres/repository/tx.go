package repository

import (
	"context"

	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"gorm.io/gorm"
)

// GormTxManager runs a function against repositories bound to a single
// database transaction. An error from fn rolls everything back.
type GormTxManager struct {
	DB *gorm.DB
}

func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{DB: db}
}

func (m *GormTxManager) WithinTx(ctx context.Context, fn func(r domain.Repositories) error) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(domain.Repositories{
			PendingOrders: NewDefaultPendingOrderRepository(tx),
			Orders:        NewDefaultOrderRepository(tx),
			Products:      NewDefaultProductRepository(tx),
			Discounts:     NewDefaultDiscountRepository(tx),
			Carts:         NewDefaultCartRepository(tx),
		})
	})
}
