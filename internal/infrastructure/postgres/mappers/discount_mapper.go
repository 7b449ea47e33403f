package mappers

import (
	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/models"
)

func ToDomainDiscountCode(model *models.DiscountCodeModel) *domain.DiscountCode {
	return &domain.DiscountCode{
		ID:          model.ID,
		Code:        model.Code,
		Type:        domain.DiscountType(model.Type),
		Value:       model.Value,
		StartsAt:    model.StartsAt,
		EndsAt:      model.EndsAt,
		MinPurchase: model.MinPurchase,
		UsageLimit:  model.UsageLimit,
		UsedCount:   model.UsedCount,
		IsActive:    model.IsActive,
	}
}

func ToGORMDiscountUsage(usage *domain.DiscountCodeUsage) *models.DiscountCodeUsageModel {
	return &models.DiscountCodeUsageModel{
		ID:             usage.ID,
		DiscountCodeID: usage.DiscountCodeID,
		UserID:         usage.UserID,
		OrderNo:        usage.OrderNo,
		UsedAt:         usage.UsedAt,
	}
}

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:            model.ID,
		Title:         model.Title,
		Price:         model.Price,
		StockQuantity: model.StockQuantity,
		IsVisible:     model.IsVisible,
	}
}
