package order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
)

// Finalize converts a reservation into a permanent order in one transaction:
// consume the pending row, insert the order with its item snapshots, clear
// the buyer's cart, decrement stock, and record the discount redemption. Any
// failure rolls everything back and leaves the reservation intact for the
// gateway's next retry.
func (uc *DefaultOrderUsecase) Finalize(ctx context.Context, pending *domain.PendingOrder, result *domain.GatewayResult) (*domain.Order, error) {
	order := buildOrder(pending, result)

	err := uc.TxManager.WithinTx(ctx, func(r domain.Repositories) error {
		// Conditional delete on the same predicate the sweeper uses: the
		// loser of a finalize/sweep race finds zero rows and aborts.
		rows, err := r.PendingOrders.DeletePayable(ctx, pending.OrderNo, time.Now())
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrReservationAlreadyTaken
		}

		if err := r.Orders.Create(ctx, order); err != nil {
			return err
		}

		// The reservation is a copy of cart contents, not a hold on them.
		if err := r.Carts.ClearByUserID(ctx, pending.UserID); err != nil {
			return err
		}

		for _, item := range pending.Items {
			if err := r.Products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		if pending.DiscountCodeID != nil {
			if err := uc.redeemDiscount(ctx, r.Discounts, pending); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		uc.Metrics.FinalizationFailuresTotal.Inc()
		return nil, fmt.Errorf("finalize order %s: %w", pending.OrderNo, err)
	}

	uc.Metrics.RecordFinalized(order.FinalAmount)
	slog.Info("order finalized",
		"order_no", order.OrderNo,
		"user_id", order.UserID,
		"final_amount", order.FinalAmount,
		"trade_no", order.GatewayTradeNo,
	)

	uc.runSideEffects(ctx, order)

	return order, nil
}

// redeemDiscount re-validates the code inside the finalization transaction;
// time may have passed since checkout. The unique (code, user) constraint on
// usages turns a concurrent double redemption into a safe rollback.
func (uc *DefaultOrderUsecase) redeemDiscount(ctx context.Context, discounts domain.DiscountRepository, pending *domain.PendingOrder) error {
	discount, err := discounts.FindByID(ctx, *pending.DiscountCodeID)
	if err != nil {
		return err
	}
	if err := discount.Validate(pending.Subtotal, time.Now()); err != nil {
		return err
	}

	if err := discounts.RecordUsage(ctx, &domain.DiscountCodeUsage{
		ID:             uuid.New().String(),
		DiscountCodeID: discount.ID,
		UserID:         pending.UserID,
		OrderNo:        pending.OrderNo,
		UsedAt:         time.Now(),
	}); err != nil {
		return err
	}

	return discounts.IncrementUsedCount(ctx, discount.ID)
}

// runSideEffects fires the post-commit collaborators. They return explicit
// results that are logged and counted; none of them can undo the committed
// order.
func (uc *DefaultOrderUsecase) runSideEffects(ctx context.Context, order *domain.Order) {
	if _, err := uc.InvoiceIssuer.Issue(ctx, order); err != nil {
		slog.Error("invoice issuance failed", "order_no", order.OrderNo, "error", err.Error())
		uc.Metrics.RecordSideEffectFailure("invoice")
	}

	if err := uc.Notifier.SendOrderConfirmation(ctx, order); err != nil {
		slog.Error("order confirmation mail failed", "order_no", order.OrderNo, "error", err.Error())
		uc.Metrics.RecordSideEffectFailure("email")
	}

	if err := uc.Publisher.PublishOrderFinalized(order); err != nil {
		slog.Error("failed to publish order finalized event", "order_no", order.OrderNo, "error", err.Error())
		uc.Metrics.RecordSideEffectFailure("event")
	}
}

func buildOrder(pending *domain.PendingOrder, result *domain.GatewayResult) *domain.Order {
	paidAt, err := time.Parse(time.RFC3339, result.PaidAt)
	if err != nil {
		paidAt = time.Now()
	}

	orderID := uuid.New().String()
	items := make([]domain.OrderItem, len(pending.Items))
	for i, item := range pending.Items {
		items[i] = domain.OrderItem{
			ID:        uuid.New().String(),
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		}
	}

	return &domain.Order{
		ID:                orderID,
		OrderNo:           pending.OrderNo,
		UserID:            pending.UserID,
		Subtotal:          pending.Subtotal,
		DiscountAmount:    pending.DiscountAmount,
		ShippingFee:       pending.ShippingFee,
		FinalAmount:       pending.FinalAmount,
		DiscountCodeID:    pending.DiscountCodeID,
		RecipientName:     pending.RecipientName,
		RecipientPhone:    pending.RecipientPhone,
		ContactEmail:      pending.ContactEmail,
		ShippingAddr:      pending.ShippingAddr,
		InvoiceTitle:      pending.InvoiceTitle,
		InvoiceTaxID:      pending.InvoiceTaxID,
		PaymentStatus:     domain.PaymentStatusPaid,
		FulfillmentStatus: domain.FulfillmentStatusPending,
		GatewayTradeNo:    result.TradeNo,
		PaymentType:       result.PaymentType,
		PaidAt:            paidAt,
		CreatedAt:         time.Now(),
		Items:             items,
	}
}
