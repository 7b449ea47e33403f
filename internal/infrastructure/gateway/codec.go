package gateway

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/inkwellbooks/bookshop-order-service/internal/domain"
)

// Codec implements the gateway's wire protocol: AES-256-CBC encryption of the
// trade payload, hex transport encoding, and an uppercase SHA-256 check value
// computed over the payload bracketed by the merchant key and IV.
//
// The provider's padding scheme is non-standard: inbound payloads are not
// unpadded through PKCS#7 validation but by stripping trailing control bytes
// after decryption. Keep every provider quirk inside this package.
type Codec struct {
	merchantID string
	gatewayURL string
	version    string
	key        []byte
	iv         []byte
}

func NewCodec(merchantID, hashKey, hashIV, gatewayURL, version string) (*Codec, error) {
	if len(hashKey) != 32 {
		return nil, fmt.Errorf("gateway hash key must be 32 bytes, got %d", len(hashKey))
	}
	if len(hashIV) != aes.BlockSize {
		return nil, fmt.Errorf("gateway hash iv must be %d bytes, got %d", aes.BlockSize, len(hashIV))
	}
	return &Codec{
		merchantID: merchantID,
		gatewayURL: gatewayURL,
		version:    version,
		key:        []byte(hashKey),
		iv:         []byte(hashIV),
	}, nil
}

// Encrypt CBC-encrypts plaintext with the merchant key/IV and returns it
// hex-encoded. Outbound payloads are PKCS#7-padded, which the provider
// accepts.
func (c *Codec) Encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("init cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, c.iv).CryptBlocks(out, padded)

	return hex.EncodeToString(out), nil
}

// Decrypt reverses Encrypt and strips the provider's trailing padding bytes.
func (c *Codec) Decrypt(ciphertext string) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(ciphertext))
	if err != nil {
		return nil, fmt.Errorf("%w: not hex encoded", domain.ErrMalformedGatewayPayload)
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d", domain.ErrMalformedGatewayPayload, len(raw))
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	out := make([]byte, len(raw))
	cipher.NewCBCDecrypter(block, c.iv).CryptBlocks(out, raw)

	return stripPadding(out), nil
}

// CheckValue computes the uppercase SHA-256 digest over the payload bracketed
// by the merchant key and IV with the provider's fixed separators.
func (c *Codec) CheckValue(payload string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("HashKey=%s&%s&HashIV=%s", c.key, payload, c.iv)))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// VerifyCheckValue recomputes the check value for payload and compares it to
// the one the gateway reported. Must be called before any decryption attempt.
func (c *Codec) VerifyCheckValue(payload, reported string) bool {
	want := c.CheckValue(payload)
	return subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToUpper(reported))) == 1
}

// EncodeTradeInfo builds the gateway redirect descriptor for a reservation.
// The caller's struct is left untouched; the merchant id is stamped onto a
// copy.
func (c *Codec) EncodeTradeInfo(info *domain.TradeInfo) (*domain.PaymentDescriptor, error) {
	stamped := *info
	stamped.MerchantID = c.merchantID

	payload, err := json.Marshal(&stamped)
	if err != nil {
		return nil, fmt.Errorf("marshal trade info: %w", err)
	}

	encrypted, err := c.Encrypt(payload)
	if err != nil {
		return nil, fmt.Errorf("encrypt trade info: %w", err)
	}

	return &domain.PaymentDescriptor{
		GatewayURL: c.gatewayURL,
		MerchantID: c.merchantID,
		TradeInfo:  encrypted,
		TradeSha:   c.CheckValue(encrypted),
		Version:    c.version,
		OrderNo:    stamped.OrderNo,
		Amount:     stamped.Amount,
	}, nil
}

// DecodeTradeResult decrypts and parses an inbound callback payload.
func (c *Codec) DecodeTradeResult(ciphertext string) (*domain.GatewayResult, error) {
	plaintext, err := c.Decrypt(ciphertext)
	if err != nil {
		return nil, err
	}

	var result domain.GatewayResult
	if err := json.Unmarshal(plaintext, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedGatewayPayload, err)
	}

	return &result, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// stripPadding drops trailing control characters instead of validating block
// padding; the provider pads with bytes the JSON payload never ends with.
func stripPadding(data []byte) []byte {
	return bytes.TrimRightFunc(data, func(r rune) bool {
		return r <= 0x20 || r == 0x7f
	})
}
