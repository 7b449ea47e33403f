package domain

import (
	"context"
	"time"
)

type PendingOrderRepository interface {
	Create(ctx context.Context, order *PendingOrder) error
	// FindPayable returns the pending order with the given order number whose
	// status is still pending and whose expiry is after now. Returns
	// ErrReservationNotFound when no such row exists.
	FindPayable(ctx context.Context, orderNo string, now time.Time) (*PendingOrder, error)
	// DeletePayable deletes the row selected by the same predicate as
	// FindPayable and reports how many rows were removed. Zero means the row
	// was already finalized or swept; the caller must treat that as losing
	// the race.
	DeletePayable(ctx context.Context, orderNo string, now time.Time) (int64, error)
	// DeleteExpired removes every pending order whose expiry has passed and
	// returns the order numbers of the deleted rows. Items cascade.
	DeleteExpired(ctx context.Context, now time.Time) ([]string, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)
	ListByUserID(ctx context.Context, userID string, page, limit int) ([]*Order, int64, error)
}

type ProductRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]*Product, error)
	// DecrementStock subtracts qty from the product's stock in a single
	// conditional statement, clamped at zero, and unpublishes the product in
	// the same statement when the resulting stock is zero.
	DecrementStock(ctx context.Context, productID string, qty int) error
}

type DiscountRepository interface {
	FindByCode(ctx context.Context, code string) (*DiscountCode, error)
	FindByID(ctx context.Context, id string) (*DiscountCode, error)
	HasUsage(ctx context.Context, discountCodeID, userID string) (bool, error)
	// RecordUsage inserts the usage row; a duplicate (code, user) pair is
	// reported as ErrDiscountAlreadyRedeemed.
	RecordUsage(ctx context.Context, usage *DiscountCodeUsage) error
	IncrementUsedCount(ctx context.Context, discountCodeID string) error
}

type CartRepository interface {
	ClearByUserID(ctx context.Context, userID string) error
}

type PaymentTransactionRepository interface {
	Create(ctx context.Context, tx *PaymentTransaction) error
}

// Repositories is the set of stores a transaction spans.
type Repositories struct {
	PendingOrders PendingOrderRepository
	Orders        OrderRepository
	Products      ProductRepository
	Discounts     DiscountRepository
	Carts         CartRepository
}

// TxManager runs fn against transaction-scoped repositories. An error from fn
// rolls the whole transaction back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(r Repositories) error) error
}
