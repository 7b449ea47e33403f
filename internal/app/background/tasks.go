package background

import (
	"context"
	"log"
	"time"

	"github.com/inkwellbooks/bookshop-order-service/internal/usecase/order"
)

type BackgroundTasks struct {
	OrderUsecase order.OrderUsecase
}

func NewBackgroundTasks(orderUC order.OrderUsecase) *BackgroundTasks {
	return &BackgroundTasks{
		OrderUsecase: orderUC,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startReservationExpirySweep(ctx)
}

// startReservationExpirySweep runs once at start and then daily. Expiry
// lives in the stored timestamp, so a sweep after a restart still catches
// everything that lapsed while the process was down.
func (bt *BackgroundTasks) startReservationExpirySweep(ctx context.Context) {
	if _, err := bt.OrderUsecase.ExpireStaleReservations(ctx); err != nil {
		log.Printf("Reservation sweep error: %v\n", err)
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := bt.OrderUsecase.ExpireStaleReservations(ctx); err != nil {
				log.Printf("Reservation sweep error: %v\n", err)
			}
		}
	}
}
