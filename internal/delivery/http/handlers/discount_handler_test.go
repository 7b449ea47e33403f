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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDiscountUsecase struct {
	quote *domain.DiscountQuote
	err   error
}

func (s *stubDiscountUsecase) Validate(context.Context, string, string, int64, time.Time) (*domain.DiscountQuote, error) {
	return s.quote, s.err
}

func postValidate(uc *stubDiscountUsecase, userID, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/discounts/validate", handlers.NewDiscountHandler(uc).Validate)

	req := httptest.NewRequest(http.MethodPost, "/api/discounts/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateDiscount_Valid(t *testing.T) {
	uc := &stubDiscountUsecase{
		quote: &domain.DiscountQuote{Code: "SAVE100", Type: domain.DiscountTypeFixed, Amount: 10000},
	}

	w := postValidate(uc, "user-1", `{"code": "SAVE100", "subtotal": 100000}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Valid          bool   `json:"valid"`
		Code           string `json:"code"`
		DiscountAmount int64  `json:"discount_amount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Valid)
	assert.Equal(t, "SAVE100", body.Code)
	assert.Equal(t, int64(10000), body.DiscountAmount)
}

func TestValidateDiscount_RejectionIsNotAnHTTPError(t *testing.T) {
	// A rejected code is a normal answer for the checkout page, not a failure.
	uc := &stubDiscountUsecase{err: domain.ErrDiscountExhausted}

	w := postValidate(uc, "user-1", `{"code": "CAP", "subtotal": 100000}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Valid   bool   `json:"valid"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Valid)
	assert.NotEmpty(t, body.Message)
}

func TestValidateDiscount_MissingUserIdentity(t *testing.T) {
	w := postValidate(&stubDiscountUsecase{}, "", `{"code": "SAVE100", "subtotal": 100000}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
