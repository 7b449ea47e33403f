package invoice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
)

// HTTPInvoiceIssuer calls the e-invoice provider's API. It is only invoked
// after the finalization transaction commits; a failure here is logged by
// the caller and never affects the committed order.
type HTTPInvoiceIssuer struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPInvoiceIssuer(baseURL, apiKey string) *HTTPInvoiceIssuer {
	return &HTTPInvoiceIssuer{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type issueRequest struct {
	OrderNo      string `json:"order_no"`
	Amount       int64  `json:"amount"`
	BuyerEmail   string `json:"buyer_email"`
	InvoiceTitle string `json:"invoice_title"`
	InvoiceTaxID string `json:"invoice_tax_id"`
}

type issueResponse struct {
	InvoiceNo string `json:"invoice_no"`
	Message   string `json:"message"`
}

func (i *HTTPInvoiceIssuer) Issue(ctx context.Context, order *domain.Order) (*domain.InvoiceResult, error) {
	body, err := json.Marshal(issueRequest{
		OrderNo:      order.OrderNo,
		Amount:       order.FinalAmount,
		BuyerEmail:   order.ContactEmail,
		InvoiceTitle: order.InvoiceTitle,
		InvoiceTaxID: order.InvoiceTaxID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal invoice request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.baseURL+"/invoices", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build invoice request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+i.apiKey)

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("invoice request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("invoice service returned %s", resp.Status)
	}

	var out issueResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode invoice response: %w", err)
	}

	return &domain.InvoiceResult{InvoiceNo: out.InvoiceNo}, nil
}
