package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/mappers"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	model := mappers.ToGORMOrder(order)
	if err := r.DB.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("create order %s: %w", order.OrderNo, err)
	}
	return nil
}

func (r *DefaultOrderRepository) FindByOrderNo(ctx context.Context, orderNo string) (*domain.Order, error) {
	var model models.OrderModel
	err := r.DB.WithContext(ctx).
		Preload("Items").
		First(&model, "order_no = ?", orderNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order %s: %w", orderNo, err)
	}
	return mappers.ToDomainOrder(&model), nil
}

func (r *DefaultOrderRepository) ListByUserID(ctx context.Context, userID string, page, limit int) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).Model(&models.OrderModel{}).Where("user_id = ?", userID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, total, nil
}
