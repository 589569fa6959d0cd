package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/payment/provider"
)

// PaymentService implements the business logic for payment operations.
type PaymentService struct {
	provider  provider.Provider
	keyID     string
	keySecret string
	logger    *slog.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(p provider.Provider, keyID, keySecret string, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		provider:  p,
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
	}
}

// KeyID returns the publishable key id the storefront embeds in its
// checkout widget.
func (s *PaymentService) KeyID() string {
	return s.keyID
}

// CreateOrder opens a payment order with the provider and returns its
// response body untouched.
func (s *PaymentService) CreateOrder(ctx context.Context, req provider.OrderRequest) (json.RawMessage, error) {
	if req.Currency == "" {
		req.Currency = "INR"
	}

	body, err := s.provider.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "payment order created",
		slog.Int64("amount", req.Amount),
		slog.String("currency", req.Currency),
	)
	return body, nil
}

// VerifySignature checks the provider callback signature:
// HMAC-SHA256(orderID + "|" + paymentID) keyed with the secret, hex encoded,
// compared in constant time.
func (s *PaymentService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
