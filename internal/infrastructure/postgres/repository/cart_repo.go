package repository

import (
	"context"
	"fmt"

	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCartRepository struct {
	DB *gorm.DB
}

func NewDefaultCartRepository(db *gorm.DB) *DefaultCartRepository {
	return &DefaultCartRepository{DB: db}
}

func (r *DefaultCartRepository) ClearByUserID(ctx context.Context, userID string) error {
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItemModel{}).Error
	if err != nil {
		return fmt.Errorf("clear cart for user %s: %w", userID, err)
	}
	return nil
}
