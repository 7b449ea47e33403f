package order

import (
	"context"

	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
)

func (uc *DefaultOrderUsecase) GetOrderByOrderNo(ctx context.Context, orderNo string) (*domain.Order, error) {
	return uc.OrderRepo.FindByOrderNo(ctx, orderNo)
}

func (uc *DefaultOrderUsecase) ListUserOrders(ctx context.Context, userID string, page, limit int) ([]*domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.OrderRepo.ListByUserID(ctx, userID, page, limit)
}
