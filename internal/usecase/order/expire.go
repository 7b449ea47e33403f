package order

import (
	"context"
	"log/slog"
	"time"
)

// ExpireStaleReservations deletes every never-paid reservation whose expiry
// has passed. The delete uses the same predicate as finalization's pending
// lookup, so a reservation being finalized concurrently is never swept.
func (uc *DefaultOrderUsecase) ExpireStaleReservations(ctx context.Context) (int, error) {
	orderNos, err := uc.PendingOrderRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	for _, orderNo := range orderNos {
		uc.Metrics.ReservationsExpiredTotal.Inc()
		if err := uc.Publisher.PublishReservationExpired(orderNo); err != nil {
			slog.Error("failed to publish reservation expired event", "order_no", orderNo, "error", err.Error())
			uc.Metrics.RecordSideEffectFailure("event")
		}
	}

	if len(orderNos) > 0 {
		slog.Info("expired reservations swept", "count", len(orderNos))
	}
	return len(orderNos), nil
}
