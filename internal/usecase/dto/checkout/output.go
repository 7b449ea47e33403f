package checkoutdto

import "github.com/inkwellbooks/bookshop-order-service/internal/domain"

// CheckoutOutput is the reservation plus the gateway redirect descriptor the
// client uses to reach the payment page.
type CheckoutOutput struct {
	PendingOrder *domain.PendingOrder
	Payment      *domain.PaymentDescriptor
}
