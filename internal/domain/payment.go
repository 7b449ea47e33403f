package domain

import "time"

const GatewayStatusSuccess = "SUCCESS"

// TradeInfo is the outbound payload encrypted into the checkout redirect.
type TradeInfo struct {
	MerchantID  string `json:"merchant_id"`
	OrderNo     string `json:"order_no"`
	Amount      int64  `json:"amount"`
	ItemDesc    string `json:"item_desc"`
	Email       string `json:"email"`
	ReturnURL   string `json:"return_url"`
	NotifyURL   string `json:"notify_url"`
	TimestampTS int64  `json:"timestamp"`
}

// GatewayResult is the decrypted payload of a gateway callback.
type GatewayResult struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	OrderNo     string `json:"order_no"`
	TradeNo     string `json:"trade_no"`
	Amount      int64  `json:"amount"`
	PaymentType string `json:"payment_type"`
	PaidAt      string `json:"paid_at"`
}

func (r *GatewayResult) Succeeded() bool {
	return r.Status == GatewayStatusSuccess
}

// PaymentDescriptor is everything the client needs to reach the gateway.
type PaymentDescriptor struct {
	GatewayURL string `json:"gateway_url"`
	MerchantID string `json:"merchant_id"`
	TradeInfo  string `json:"trade_info"`
	TradeSha   string `json:"trade_sha"`
	Version    string `json:"version"`
	OrderNo    string `json:"order_no"`
	Amount     int64  `json:"amount"`
}

// PaymentCodec implements the gateway's wire encoding: symmetric encryption
// of trade payloads and the keyed check value that authenticates them.
type PaymentCodec interface {
	EncodeTradeInfo(info *TradeInfo) (*PaymentDescriptor, error)
	DecodeTradeResult(ciphertext string) (*GatewayResult, error)
	VerifyCheckValue(payload, reported string) bool
}

// PaymentTransaction is an append-only audit row recorded for every gateway
// callback, successful or not. Rows are inserted, never updated.
type PaymentTransaction struct {
	ID          string
	OrderNo     string
	TradeNo     string
	Amount      int64
	Status      string
	PaymentType string
	Success     bool
	RawMessage  string
	CreatedAt   time.Time
}
