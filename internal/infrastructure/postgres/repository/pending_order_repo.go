package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/mappers"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPendingOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultPendingOrderRepository(db *gorm.DB) *DefaultPendingOrderRepository {
	return &DefaultPendingOrderRepository{DB: db}
}

func (r *DefaultPendingOrderRepository) Create(ctx context.Context, order *domain.PendingOrder) error {
	model := mappers.ToGORMPendingOrder(order)
	if err := r.DB.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("create pending order: %w", err)
	}
	return nil
}

func (r *DefaultPendingOrderRepository) FindPayable(ctx context.Context, orderNo string, now time.Time) (*domain.PendingOrder, error) {
	var model models.PendingOrderModel
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("order_no = ? AND status = ? AND expired_at > ?", orderNo, domain.PendingStatusPending, now).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find pending order %s: %w", orderNo, err)
	}
	return mappers.ToDomainPendingOrder(&model), nil
}

// DeletePayable uses the same row predicate as FindPayable and the expiry
// sweep, so for a given order number exactly one of finalize and sweep wins.
func (r *DefaultPendingOrderRepository) DeletePayable(ctx context.Context, orderNo string, now time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("order_no = ? AND status = ? AND expired_at > ?", orderNo, domain.PendingStatusPending, now).
		Delete(&models.PendingOrderModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete pending order %s: %w", orderNo, res.Error)
	}
	return res.RowsAffected, nil
}

func (r *DefaultPendingOrderRepository) DeleteExpired(ctx context.Context, now time.Time) ([]string, error) {
	var deleted []models.PendingOrderModel
	err := r.DB.WithContext(ctx).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "order_no"}}}).
		Where("status = ? AND expired_at <= ?", domain.PendingStatusPending, now).
		Delete(&deleted).Error
	if err != nil {
		return nil, fmt.Errorf("delete expired pending orders: %w", err)
	}

	orderNos := make([]string, len(deleted))
	for i, model := range deleted {
		orderNos[i] = model.OrderNo
	}
	return orderNos, nil
}
