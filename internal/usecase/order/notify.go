package order

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/metrics"
	orderdto "github.com/inkwellbooks/bookshop-order-service/internal/usecase/dto/order"
)

// ProcessGatewayNotification drives the reconciliation state machine for one
// inbound notify callback: verify checksum, decode, audit, then reconcile.
// The gateway redelivers unacknowledged notifications, so every outcome is
// absorbed here and the handler acknowledges regardless.
func (uc *DefaultOrderUsecase) ProcessGatewayNotification(ctx context.Context, input *orderdto.GatewayNotificationInput) orderdto.NotifyOutcome {
	// Checksum verification must precede any decryption attempt.
	if !uc.Codec.VerifyCheckValue(input.TradeInfo, input.TradeSha) {
		slog.Warn("gateway notification rejected", "reason", "checksum mismatch")
		uc.Metrics.RecordCallback(metrics.CallbackChecksumMismatch)
		return orderdto.OutcomeChecksumMismatch
	}

	result, err := uc.Codec.DecodeTradeResult(input.TradeInfo)
	if err != nil {
		slog.Warn("gateway notification rejected", "reason", "malformed payload", "error", err.Error())
		uc.Metrics.RecordCallback(metrics.CallbackMalformed)
		return orderdto.OutcomeMalformedPayload
	}

	// Audit every decoded callback, successful or not. Losing an audit row
	// must not block fulfilling a paid order, so failures are logged and
	// reconciliation continues.
	auditErr := uc.PaymentTxRepo.Create(ctx, &domain.PaymentTransaction{
		ID:          uuid.New().String(),
		OrderNo:     result.OrderNo,
		TradeNo:     result.TradeNo,
		Amount:      result.Amount,
		Status:      result.Status,
		PaymentType: result.PaymentType,
		Success:     result.Succeeded(),
		RawMessage:  result.Message,
		CreatedAt:   time.Now(),
	})
	if auditErr != nil {
		slog.Error("failed to record payment transaction", "order_no", result.OrderNo, "error", auditErr.Error())
	}

	if !result.Succeeded() {
		slog.Info("gateway reported non-success payment",
			"order_no", result.OrderNo, "status", result.Status, "message", result.Message)
		uc.Metrics.RecordCallback(metrics.CallbackPaymentFailed)
		return orderdto.OutcomePaymentFailed
	}

	pending, err := uc.PendingOrderRepo.FindPayable(ctx, result.OrderNo, time.Now())
	if errors.Is(err, domain.ErrReservationNotFound) {
		// Expected idempotent path for at-least-once delivery: the order was
		// already finalized, already swept, or never ours.
		slog.Info("no matching pending order for success callback", "order_no", result.OrderNo)
		uc.Metrics.RecordCallback(metrics.CallbackNoReservation)
		return orderdto.OutcomeNoReservation
	}
	if err != nil {
		// A paid reservation may still exist; this needs an operator, not a
		// silent skip.
		slog.Error("pending order lookup failed for success callback",
			"order_no", result.OrderNo, "error", err.Error())
		uc.Metrics.RecordCallback(metrics.CallbackLookupFailed)
		return orderdto.OutcomeLookupFailed
	}

	if result.Amount != pending.FinalAmount {
		slog.Error("reported amount does not match reservation",
			"order_no", result.OrderNo, "reported", result.Amount, "expected", pending.FinalAmount)
		uc.Metrics.RecordCallback(metrics.CallbackAmountMismatch)
		return orderdto.OutcomeAmountMismatch
	}

	if _, err := uc.Finalize(ctx, pending, result); err != nil {
		slog.Error("finalization failed, reservation kept for retry",
			"order_no", result.OrderNo, "error", err.Error())
		uc.Metrics.RecordCallback(metrics.CallbackFinalizeFailed)
		return orderdto.OutcomeFinalizeFailed
	}

	uc.Metrics.RecordCallback(metrics.CallbackFinalized)
	return orderdto.OutcomeFinalized
}

// DecodeReturnResult decodes the browser return callback. It performs no
// state mutation; the handler only picks a redirect target from the status.
func (uc *DefaultOrderUsecase) DecodeReturnResult(tradeInfo string) (*domain.GatewayResult, error) {
	return uc.Codec.DecodeTradeResult(tradeInfo)
}
