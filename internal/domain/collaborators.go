package domain

import "context"

// InvoiceResult is the explicit outcome of invoice issuance; failures are
// logged by the caller, never turned into transaction failures.
type InvoiceResult struct {
	InvoiceNo string
}

// InvoiceIssuer issues an e-invoice for a finalized order. Invoked after the
// finalization transaction commits, best-effort.
type InvoiceIssuer interface {
	Issue(ctx context.Context, order *Order) (*InvoiceResult, error)
}

// Notifier sends the order confirmation to the buyer. Best-effort,
// post-commit.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, order *Order) error
}

// OrderEventPublisher emits order lifecycle events for downstream consumers.
type OrderEventPublisher interface {
	PublishOrderFinalized(order *Order) error
	PublishReservationExpired(orderNo string) error
}
