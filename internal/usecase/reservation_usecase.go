package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/metrics"
	checkoutdto "github.com/inkwellbooks/bookshop-order-service/internal/usecase/dto/checkout"
	"github.com/jaevor/go-nanoid"
)

// ReservationTTL is how long an unpaid reservation stays payable. Expiry is
// enforced by the sweep against the stored timestamp, not by an in-process
// timer, so it survives restarts.
const ReservationTTL = 24 * time.Hour

type ReservationUsecase interface {
	CreateReservation(ctx context.Context, input *checkoutdto.CreateReservationInput) (*checkoutdto.CheckoutOutput, error)
}

type DefaultReservationUsecase struct {
	PendingOrderRepo domain.PendingOrderRepository
	ProductRepo      domain.ProductRepository
	DiscountUsecase  DiscountUsecase
	Codec            domain.PaymentCodec
	ReturnURL        string
	NotifyURL        string
	Metrics          *metrics.OrderMetrics

	newOrderNo func() string
}

func NewDefaultReservationUsecase(
	pendingOrderRepo domain.PendingOrderRepository,
	productRepo domain.ProductRepository,
	discountUsecase DiscountUsecase,
	codec domain.PaymentCodec,
	returnURL, notifyURL string,
	m *metrics.OrderMetrics,
) *DefaultReservationUsecase {
	gen, err := nanoid.CustomASCII("0123456789", 16)
	if err != nil {
		panic(fmt.Sprintf("init order number generator: %v", err))
	}
	return &DefaultReservationUsecase{
		PendingOrderRepo: pendingOrderRepo,
		ProductRepo:      productRepo,
		DiscountUsecase:  discountUsecase,
		Codec:            codec,
		ReturnURL:        returnURL,
		NotifyURL:        notifyURL,
		Metrics:          m,
		newOrderNo:       func() string { return "BKS" + gen() },
	}
}

func (uc *DefaultReservationUsecase) CreateReservation(ctx context.Context, input *checkoutdto.CreateReservationInput) (*checkoutdto.CheckoutOutput, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("checkout has no items")
	}
	now := time.Now()

	products, err := uc.lookupProducts(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	// Stock precheck against live quantities. This is advisory only; the
	// authoritative guard is the conditional decrement at finalization.
	var shortages []domain.StockShortage
	for _, item := range input.Items {
		product := products[item.ProductID]
		if item.Quantity > product.StockQuantity {
			shortages = append(shortages, domain.StockShortage{
				ProductID: item.ProductID,
				Requested: item.Quantity,
				Available: product.StockQuantity,
			})
		}
	}
	if len(shortages) > 0 {
		return nil, &domain.InsufficientStockError{Shortages: shortages}
	}

	// Price snapshot from authoritative product data.
	items := make([]domain.PendingOrderItem, len(input.Items))
	var subtotal int64
	var titles []string
	for i, item := range input.Items {
		product := products[item.ProductID]
		lineSubtotal := product.Price * int64(item.Quantity)
		items[i] = domain.PendingOrderItem{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Title:     product.Title,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
			Subtotal:  lineSubtotal,
		}
		subtotal += lineSubtotal
		titles = append(titles, product.Title)
	}

	var discountAmount int64
	var discountCodeID *string
	if input.DiscountCode != "" {
		quote, err := uc.DiscountUsecase.Validate(ctx, input.DiscountCode, input.UserID, subtotal, now)
		if err != nil {
			return nil, err
		}
		discountAmount = quote.Amount
		discountCodeID = &quote.DiscountCodeID
	}

	// Guard against a tampered client-computed total.
	if input.FinalAmount != subtotal-discountAmount+input.ShippingFee {
		return nil, domain.ErrAmountMismatch
	}

	orderNo := uc.newOrderNo()
	pending := &domain.PendingOrder{
		ID:             uuid.New().String(),
		OrderNo:        orderNo,
		UserID:         input.UserID,
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		ShippingFee:    input.ShippingFee,
		FinalAmount:    input.FinalAmount,
		DiscountCodeID: discountCodeID,
		RecipientName:  input.RecipientName,
		RecipientPhone: input.RecipientPhone,
		ContactEmail:   input.ContactEmail,
		ShippingAddr:   input.ShippingAddr,
		InvoiceTitle:   input.InvoiceTitle,
		InvoiceTaxID:   input.InvoiceTaxID,
		Status:         domain.PendingStatusPending,
		ExpiredAt:      now.Add(ReservationTTL),
		CreatedAt:      now,
		Items:          items,
	}

	if err := uc.PendingOrderRepo.Create(ctx, pending); err != nil {
		return nil, err
	}

	descriptor, err := uc.Codec.EncodeTradeInfo(&domain.TradeInfo{
		OrderNo:     orderNo,
		Amount:      pending.FinalAmount,
		ItemDesc:    strings.Join(titles, ", "),
		Email:       input.ContactEmail,
		ReturnURL:   uc.ReturnURL,
		NotifyURL:   uc.NotifyURL,
		TimestampTS: now.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("build payment descriptor: %w", err)
	}

	uc.Metrics.ReservationsCreatedTotal.Inc()
	slog.Info("reservation created",
		"order_no", orderNo,
		"user_id", input.UserID,
		"final_amount", pending.FinalAmount,
		"expires_at", pending.ExpiredAt,
	)

	return &checkoutdto.CheckoutOutput{
		PendingOrder: pending,
		Payment:      descriptor,
	}, nil
}

func (uc *DefaultReservationUsecase) lookupProducts(ctx context.Context, items []checkoutdto.CheckoutItemInput) (map[string]*domain.Product, error) {
	ids := make([]string, len(items))
	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for product %s", item.Quantity, item.ProductID)
		}
		ids[i] = item.ProductID
	}

	products, err := uc.ProductRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Product, len(products))
	for _, product := range products {
		if product.IsVisible {
			byID[product.ID] = product
		}
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, domain.ErrProductUnavailable
		}
	}
	return byID, nil
}
