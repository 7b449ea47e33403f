package usecase

import (
	"context"
	"time"

	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
)

type DiscountUsecase interface {
	// Validate checks a code against the temporal/usage rules and computes
	// the discount for subtotal. Advisory at checkout time; finalization
	// re-runs the same rules inside its transaction.
	Validate(ctx context.Context, code, userID string, subtotal int64, now time.Time) (*domain.DiscountQuote, error)
}

type DefaultDiscountUsecase struct {
	DiscountRepo domain.DiscountRepository
}

func NewDefaultDiscountUsecase(discountRepo domain.DiscountRepository) *DefaultDiscountUsecase {
	return &DefaultDiscountUsecase{DiscountRepo: discountRepo}
}

func (uc *DefaultDiscountUsecase) Validate(ctx context.Context, code, userID string, subtotal int64, now time.Time) (*domain.DiscountQuote, error) {
	return EvaluateDiscount(ctx, uc.DiscountRepo, code, userID, subtotal, now)
}

// EvaluateDiscount applies the redemption rules in order: existence, validity
// window, active flag, global usage cap, minimum purchase, and one redemption
// per (code, user). Shared between the checkout-time check and the
// finalization transaction, which runs it against tx-scoped repositories.
func EvaluateDiscount(ctx context.Context, repo domain.DiscountRepository, code, userID string, subtotal int64, now time.Time) (*domain.DiscountQuote, error) {
	discount, err := repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := discount.Validate(subtotal, now); err != nil {
		return nil, err
	}

	used, err := repo.HasUsage(ctx, discount.ID, userID)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, domain.ErrDiscountAlreadyRedeemed
	}

	return &domain.DiscountQuote{
		Code:           discount.Code,
		DiscountCodeID: discount.ID,
		Type:           discount.Type,
		Amount:         discount.Amount(subtotal),
	}, nil
}
