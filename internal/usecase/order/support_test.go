package order_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/gateway"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/metrics"
	"github.com/inkwellbooks/bookshop-order-service/internal/usecase/order"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// memStore backs all mock repositories. The mock TxManager runs the
// transaction body against a deep copy and swaps it in only on success, so a
// failing step observably rolls back every prior write.
type memStore struct {
	pending   map[string]*domain.PendingOrder // by order no
	orders    map[string]*domain.Order        // by order no
	products  map[string]*domain.Product
	discounts map[string]*domain.DiscountCode // by ID
	usages    map[string]domain.DiscountCodeUsage
	carts     map[string][]domain.CartItem
	payments  []domain.PaymentTransaction

	failCartClear     bool
	failOrderCreate   bool
	failAudit         bool
	failPendingLookup bool
}

func newMemStore() *memStore {
	return &memStore{
		pending:   make(map[string]*domain.PendingOrder),
		orders:    make(map[string]*domain.Order),
		products:  make(map[string]*domain.Product),
		discounts: make(map[string]*domain.DiscountCode),
		usages:    make(map[string]domain.DiscountCodeUsage),
		carts:     make(map[string][]domain.CartItem),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.pending {
		cp := *v
		cp.Items = append([]domain.PendingOrderItem(nil), v.Items...)
		c.pending[k] = &cp
	}
	for k, v := range s.orders {
		cp := *v
		cp.Items = append([]domain.OrderItem(nil), v.Items...)
		c.orders[k] = &cp
	}
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	for k, v := range s.discounts {
		cp := *v
		c.discounts[k] = &cp
	}
	for k, v := range s.usages {
		c.usages[k] = v
	}
	for k, v := range s.carts {
		c.carts[k] = append([]domain.CartItem(nil), v...)
	}
	c.payments = append([]domain.PaymentTransaction(nil), s.payments...)
	c.failCartClear = s.failCartClear
	c.failOrderCreate = s.failOrderCreate
	c.failAudit = s.failAudit
	c.failPendingLookup = s.failPendingLookup
	return c
}

func (s *memStore) repositories() domain.Repositories {
	return domain.Repositories{
		PendingOrders: &storePendingOrderRepo{s},
		Orders:        &storeOrderRepo{s},
		Products:      &storeProductRepo{s},
		Discounts:     &storeDiscountRepo{s},
		Carts:         &storeCartRepo{s},
	}
}

type storeTxManager struct{ store *memStore }

func (m *storeTxManager) WithinTx(_ context.Context, fn func(r domain.Repositories) error) error {
	scratch := m.store.clone()
	if err := fn(scratch.repositories()); err != nil {
		return err
	}
	*m.store = *scratch
	return nil
}

type storePendingOrderRepo struct{ s *memStore }

func (r *storePendingOrderRepo) Create(_ context.Context, order *domain.PendingOrder) error {
	r.s.pending[order.OrderNo] = order
	return nil
}

func (r *storePendingOrderRepo) FindPayable(_ context.Context, orderNo string, now time.Time) (*domain.PendingOrder, error) {
	if r.s.failPendingLookup {
		return nil, errors.New("db connection lost")
	}
	p, ok := r.s.pending[orderNo]
	if !ok || p.Status != domain.PendingStatusPending || !p.ExpiredAt.After(now) {
		return nil, domain.ErrReservationNotFound
	}
	return p, nil
}

func (r *storePendingOrderRepo) DeletePayable(_ context.Context, orderNo string, now time.Time) (int64, error) {
	p, ok := r.s.pending[orderNo]
	if !ok || p.Status != domain.PendingStatusPending || !p.ExpiredAt.After(now) {
		return 0, nil
	}
	delete(r.s.pending, orderNo)
	return 1, nil
}

func (r *storePendingOrderRepo) DeleteExpired(_ context.Context, now time.Time) ([]string, error) {
	var deleted []string
	for orderNo, p := range r.s.pending {
		if !p.ExpiredAt.After(now) {
			deleted = append(deleted, orderNo)
			delete(r.s.pending, orderNo)
		}
	}
	return deleted, nil
}

type storeOrderRepo struct{ s *memStore }

func (r *storeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	if r.s.failOrderCreate {
		return errors.New("orders table unavailable")
	}
	r.s.orders[order.OrderNo] = order
	return nil
}

func (r *storeOrderRepo) FindByOrderNo(_ context.Context, orderNo string) (*domain.Order, error) {
	o, ok := r.s.orders[orderNo]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

func (r *storeOrderRepo) ListByUserID(_ context.Context, userID string, _, _ int) ([]*domain.Order, int64, error) {
	var out []*domain.Order
	for _, o := range r.s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

type storeProductRepo struct{ s *memStore }

func (r *storeProductRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, id := range ids {
		if p, ok := r.s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *storeProductRepo) DecrementStock(_ context.Context, productID string, qty int) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrProductUnavailable
	}
	p.StockQuantity -= qty
	if p.StockQuantity <= 0 {
		p.StockQuantity = 0
		p.IsVisible = false
	}
	return nil
}

type storeDiscountRepo struct{ s *memStore }

func (r *storeDiscountRepo) FindByCode(_ context.Context, code string) (*domain.DiscountCode, error) {
	for _, d := range r.s.discounts {
		if d.Code == code {
			return d, nil
		}
	}
	return nil, domain.ErrDiscountNotFound
}

func (r *storeDiscountRepo) FindByID(_ context.Context, id string) (*domain.DiscountCode, error) {
	d, ok := r.s.discounts[id]
	if !ok {
		return nil, domain.ErrDiscountNotFound
	}
	return d, nil
}

func (r *storeDiscountRepo) HasUsage(_ context.Context, codeID, userID string) (bool, error) {
	_, ok := r.s.usages[codeID+"|"+userID]
	return ok, nil
}

func (r *storeDiscountRepo) RecordUsage(_ context.Context, usage *domain.DiscountCodeUsage) error {
	key := usage.DiscountCodeID + "|" + usage.UserID
	if _, ok := r.s.usages[key]; ok {
		return domain.ErrDiscountAlreadyRedeemed
	}
	r.s.usages[key] = *usage
	return nil
}

func (r *storeDiscountRepo) IncrementUsedCount(_ context.Context, codeID string) error {
	d, ok := r.s.discounts[codeID]
	if !ok {
		return domain.ErrDiscountNotFound
	}
	d.UsedCount++
	return nil
}

type storeCartRepo struct{ s *memStore }

func (r *storeCartRepo) ClearByUserID(_ context.Context, userID string) error {
	if r.s.failCartClear {
		return errors.New("cart table unavailable")
	}
	delete(r.s.carts, userID)
	return nil
}

type storePaymentTxRepo struct{ s *memStore }

func (r *storePaymentTxRepo) Create(_ context.Context, tx *domain.PaymentTransaction) error {
	if r.s.failAudit {
		return errors.New("payment transactions table unavailable")
	}
	r.s.payments = append(r.s.payments, *tx)
	return nil
}

// --- Collaborator mocks ---

type recordingCollaborators struct {
	invoiced  []string
	mailed    []string
	finalized []string
	expired   []string

	failInvoice bool
	failMail    bool
	failPublish bool
}

func (c *recordingCollaborators) Issue(_ context.Context, order *domain.Order) (*domain.InvoiceResult, error) {
	if c.failInvoice {
		return nil, errors.New("invoice provider down")
	}
	c.invoiced = append(c.invoiced, order.OrderNo)
	return &domain.InvoiceResult{InvoiceNo: "INV-" + order.OrderNo}, nil
}

func (c *recordingCollaborators) SendOrderConfirmation(_ context.Context, order *domain.Order) error {
	if c.failMail {
		return errors.New("smtp down")
	}
	c.mailed = append(c.mailed, order.OrderNo)
	return nil
}

func (c *recordingCollaborators) PublishOrderFinalized(order *domain.Order) error {
	if c.failPublish {
		return errors.New("broker down")
	}
	c.finalized = append(c.finalized, order.OrderNo)
	return nil
}

func (c *recordingCollaborators) PublishReservationExpired(orderNo string) error {
	if c.failPublish {
		return errors.New("broker down")
	}
	c.expired = append(c.expired, orderNo)
	return nil
}

// --- Fixture ---

type fixture struct {
	uc            *order.DefaultOrderUsecase
	store         *memStore
	codec         *gateway.Codec
	collaborators *recordingCollaborators
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	codec, err := gateway.NewCodec(
		"MS1500001",
		"Abcdefghijklmnopqrstuvwxyz123456",
		"1234567890abcdef",
		"https://gateway.example.com/pay",
		"2.0",
	)
	require.NoError(t, err)

	store := newMemStore()
	collaborators := &recordingCollaborators{}
	uc := order.NewDefaultOrderUsecase(
		&storeTxManager{store: store},
		&storePendingOrderRepo{store},
		&storeOrderRepo{store},
		&storePaymentTxRepo{store},
		codec,
		collaborators,
		collaborators,
		collaborators,
		metrics.NewOrderMetrics(prometheus.NewRegistry()),
	)
	return &fixture{uc: uc, store: store, codec: codec, collaborators: collaborators}
}

func (f *fixture) seedPending(t *testing.T, orderNo string, finalAmount int64, discountCodeID *string) *domain.PendingOrder {
	t.Helper()
	pending := &domain.PendingOrder{
		ID:             uuid.New().String(),
		OrderNo:        orderNo,
		UserID:         "user-1",
		Subtotal:       finalAmount - 6000,
		ShippingFee:    6000,
		FinalAmount:    finalAmount,
		DiscountCodeID: discountCodeID,
		ContactEmail:   "reader@example.com",
		Status:         domain.PendingStatusPending,
		ExpiredAt:      time.Now().Add(24 * time.Hour),
		CreatedAt:      time.Now(),
		Items: []domain.PendingOrderItem{
			{
				ID:        uuid.New().String(),
				ProductID: "b1",
				Title:     "The Go Programming Language",
				UnitPrice: finalAmount - 6000,
				Quantity:  1,
				Subtotal:  finalAmount - 6000,
			},
		},
	}
	f.store.pending[orderNo] = pending
	return pending
}

func (f *fixture) seedProduct(id string, stock int) {
	f.store.products[id] = &domain.Product{
		ID: id, Title: "The Go Programming Language", Price: 50000,
		StockQuantity: stock, IsVisible: true,
	}
}

// encodeResult builds a notify payload the codec accepts as authentic.
func (f *fixture) encodeResult(t *testing.T, result *domain.GatewayResult) (tradeInfo, tradeSha string) {
	t.Helper()
	payload, err := json.Marshal(result)
	require.NoError(t, err)
	tradeInfo, err = f.codec.Encrypt(payload)
	require.NoError(t, err)
	return tradeInfo, f.codec.CheckValue(tradeInfo)
}

func successResult(orderNo string, amount int64) *domain.GatewayResult {
	return &domain.GatewayResult{
		Status:      domain.GatewayStatusSuccess,
		Message:     "Authorised",
		OrderNo:     orderNo,
		TradeNo:     "TR-" + orderNo,
		Amount:      amount,
		PaymentType: "CREDIT",
		PaidAt:      time.Now().UTC().Format(time.RFC3339),
	}
}
