package repository

import (
	"context"
	"fmt"

	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/mappers"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

func (r *DefaultProductRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	var productModels []models.ProductModel
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&productModels).Error; err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	products := make([]*domain.Product, len(productModels))
	for i := range productModels {
		products[i] = mappers.ToDomainProduct(&productModels[i])
	}
	return products, nil
}

// DecrementStock subtracts qty in one conditional statement so concurrent
// finalizations never read a stale stock value: the decrement is clamped at
// zero and the visibility flip happens in the same UPDATE.
func (r *DefaultProductRepository) DecrementStock(ctx context.Context, productID string, qty int) error {
	res := r.DB.WithContext(ctx).Exec(
		`UPDATE products
		 SET stock_quantity = GREATEST(stock_quantity - ?, 0),
		     is_visible = CASE WHEN stock_quantity - ? <= 0 THEN FALSE ELSE is_visible END,
		     updated_at = NOW()
		 WHERE id = ?`,
		qty, qty, productID,
	)
	if res.Error != nil {
		return fmt.Errorf("decrement stock for product %s: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductUnavailable
	}
	return nil
}
