package repository

import (
	"context"
	"fmt"

	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentTransactionRepository(db *gorm.DB) *DefaultPaymentTransactionRepository {
	return &DefaultPaymentTransactionRepository{DB: db}
}

func (r *DefaultPaymentTransactionRepository) Create(ctx context.Context, tx *domain.PaymentTransaction) error {
	model := models.PaymentTransactionModel{
		ID:          tx.ID,
		OrderNo:     tx.OrderNo,
		TradeNo:     tx.TradeNo,
		Amount:      tx.Amount,
		Status:      tx.Status,
		PaymentType: tx.PaymentType,
		Success:     tx.Success,
		RawMessage:  tx.RawMessage,
		CreatedAt:   tx.CreatedAt,
	}
	if err := r.DB.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("create payment transaction: %w", err)
	}
	return nil
}
