package order

import (
	"context"

	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/metrics"
	orderdto "github.com/inkwellbooks/bookshop-order-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	ProcessGatewayNotification(ctx context.Context, input *orderdto.GatewayNotificationInput) orderdto.NotifyOutcome
	DecodeReturnResult(tradeInfo string) (*domain.GatewayResult, error)
	GetOrderByOrderNo(ctx context.Context, orderNo string) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID string, page, limit int) ([]*domain.Order, int64, error)
	ExpireStaleReservations(ctx context.Context) (int, error)
}

type DefaultOrderUsecase struct {
	TxManager        domain.TxManager
	PendingOrderRepo domain.PendingOrderRepository
	OrderRepo        domain.OrderRepository
	PaymentTxRepo    domain.PaymentTransactionRepository
	Codec            domain.PaymentCodec
	InvoiceIssuer    domain.InvoiceIssuer
	Notifier         domain.Notifier
	Publisher        domain.OrderEventPublisher
	Metrics          *metrics.OrderMetrics
}

func NewDefaultOrderUsecase(
	txManager domain.TxManager,
	pendingOrderRepo domain.PendingOrderRepository,
	orderRepo domain.OrderRepository,
	paymentTxRepo domain.PaymentTransactionRepository,
	codec domain.PaymentCodec,
	invoiceIssuer domain.InvoiceIssuer,
	notifier domain.Notifier,
	pub domain.OrderEventPublisher,
	m *metrics.OrderMetrics,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		TxManager:        txManager,
		PendingOrderRepo: pendingOrderRepo,
		OrderRepo:        orderRepo,
		PaymentTxRepo:    paymentTxRepo,
		Codec:            codec,
		InvoiceIssuer:    invoiceIssuer,
		Notifier:         notifier,
		Publisher:        pub,
		Metrics:          m,
	}
}
