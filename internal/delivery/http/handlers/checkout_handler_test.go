package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkwellbooks/bookshop-order-service/internal/delivery/http/handlers"
	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
	checkoutdto "github.com/inkwellbooks/bookshop-order-service/internal/usecase/dto/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReservationUsecase struct {
	output *checkoutdto.CheckoutOutput
	err    error
}

func (s *stubReservationUsecase) CreateReservation(context.Context, *checkoutdto.CreateReservationInput) (*checkoutdto.CheckoutOutput, error) {
	return s.output, s.err
}

func newCheckoutRouter(uc *stubReservationUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/checkout", handlers.NewCheckoutHandler(uc).Create)
	return r
}

const validCheckoutBody = `{
	"items": [{"product_id": "b1", "quantity": 1}],
	"shipping_fee": 6000,
	"final_amount": 56000,
	"recipient_name": "Ada Reader",
	"recipient_phone": "0912345678",
	"contact_email": "reader@example.com",
	"shipping_addr": "1 Library Way"
}`

func postCheckout(r http.Handler, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckout_Created(t *testing.T) {
	uc := &stubReservationUsecase{
		output: &checkoutdto.CheckoutOutput{
			PendingOrder: &domain.PendingOrder{
				OrderNo:   "BKS0000000000001",
				ExpiredAt: time.Now().Add(24 * time.Hour),
			},
			Payment: &domain.PaymentDescriptor{
				GatewayURL: "https://gateway.example.com/pay",
				TradeInfo:  "deadbeef",
				TradeSha:   "ABC",
				OrderNo:    "BKS0000000000001",
				Amount:     56000,
			},
		},
	}

	w := postCheckout(newCheckoutRouter(uc), "user-1", validCheckoutBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		OrderNo string                    `json:"order_no"`
		Payment *domain.PaymentDescriptor `json:"payment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "BKS0000000000001", body.OrderNo)
	assert.Equal(t, "https://gateway.example.com/pay", body.Payment.GatewayURL)
}

func TestCheckout_ZeroTotalPassesValidation(t *testing.T) {
	// Full discount plus free shipping is a legitimate zero total; binding
	// must not reject it before the amount equation is checked.
	uc := &stubReservationUsecase{
		output: &checkoutdto.CheckoutOutput{
			PendingOrder: &domain.PendingOrder{
				OrderNo:   "BKS0000000000002",
				ExpiredAt: time.Now().Add(24 * time.Hour),
			},
			Payment: &domain.PaymentDescriptor{OrderNo: "BKS0000000000002"},
		},
	}

	body := `{
		"items": [{"product_id": "b1", "quantity": 1}],
		"shipping_fee": 0,
		"final_amount": 0,
		"discount_code": "EVERYTHINGFREE",
		"recipient_name": "Ada Reader",
		"recipient_phone": "0912345678",
		"contact_email": "reader@example.com",
		"shipping_addr": "1 Library Way"
	}`

	w := postCheckout(newCheckoutRouter(uc), "user-1", body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCheckout_MissingUserIdentity(t *testing.T) {
	w := postCheckout(newCheckoutRouter(&stubReservationUsecase{}), "", validCheckoutBody)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckout_InvalidBody(t *testing.T) {
	w := postCheckout(newCheckoutRouter(&stubReservationUsecase{}), "user-1", `{"items": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckout_InsufficientStockConflict(t *testing.T) {
	uc := &stubReservationUsecase{
		err: &domain.InsufficientStockError{
			Shortages: []domain.StockShortage{{ProductID: "b1", Requested: 5, Available: 2}},
		},
	}

	w := postCheckout(newCheckoutRouter(uc), "user-1", validCheckoutBody)
	require.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		Shortages []domain.StockShortage `json:"shortages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Shortages, 1)
	assert.Equal(t, 2, body.Shortages[0].Available)
}

func TestCheckout_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrAmountMismatch, http.StatusConflict},
		{domain.ErrDiscountAlreadyRedeemed, http.StatusConflict},
		{domain.ErrDiscountExhausted, http.StatusConflict},
		{domain.ErrProductUnavailable, http.StatusBadRequest},
		{domain.ErrDiscountNotFound, http.StatusBadRequest},
		{domain.ErrDiscountOutsideWindow, http.StatusBadRequest},
		{domain.ErrBelowMinimumPurchase, http.StatusBadRequest},
	}

	for _, tc := range cases {
		w := postCheckout(newCheckoutRouter(&stubReservationUsecase{err: tc.err}), "user-1", validCheckoutBody)
		assert.Equal(t, tc.code, w.Code, "error %v", tc.err)
	}
}
