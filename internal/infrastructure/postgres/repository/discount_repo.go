package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/mappers"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDiscountRepository struct {
	DB *gorm.DB
}

func NewDefaultDiscountRepository(db *gorm.DB) *DefaultDiscountRepository {
	return &DefaultDiscountRepository{DB: db}
}

func (r *DefaultDiscountRepository) FindByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	var model models.DiscountCodeModel
	err := r.DB.WithContext(ctx).First(&model, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDiscountNotFound
		}
		return nil, fmt.Errorf("find discount code %s: %w", code, err)
	}
	return mappers.ToDomainDiscountCode(&model), nil
}

func (r *DefaultDiscountRepository) FindByID(ctx context.Context, id string) (*domain.DiscountCode, error) {
	var model models.DiscountCodeModel
	err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDiscountNotFound
		}
		return nil, fmt.Errorf("find discount code by id %s: %w", id, err)
	}
	return mappers.ToDomainDiscountCode(&model), nil
}

func (r *DefaultDiscountRepository) HasUsage(ctx context.Context, discountCodeID, userID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.DiscountCodeUsageModel{}).
		Where("discount_code_id = ? AND user_id = ?", discountCodeID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count discount usages: %w", err)
	}
	return count > 0, nil
}

// RecordUsage relies on the unique (discount_code_id, user_id) index: a
// concurrent duplicate insert fails here instead of double-counting.
func (r *DefaultDiscountRepository) RecordUsage(ctx context.Context, usage *domain.DiscountCodeUsage) error {
	err := r.DB.WithContext(ctx).Create(mappers.ToGORMDiscountUsage(usage)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "duplicate") ||
			strings.Contains(err.Error(), "unique") {
			return domain.ErrDiscountAlreadyRedeemed
		}
		return fmt.Errorf("record discount usage: %w", err)
	}
	return nil
}

func (r *DefaultDiscountRepository) IncrementUsedCount(ctx context.Context, discountCodeID string) error {
	err := r.DB.WithContext(ctx).
		Model(&models.DiscountCodeModel{}).
		Where("id = ?", discountCodeID).
		UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error
	if err != nil {
		return fmt.Errorf("increment used count: %w", err)
	}
	return nil
}
