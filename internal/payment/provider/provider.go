package provider

import (
	"context"
	"encoding/json"
)

// OrderRequest describes the payment order to open with the provider.
// Amount is in the currency's smallest unit.
type OrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// Provider opens payment orders with an external payment gateway. The
// provider's response body is passed through to the storefront untouched.
type Provider interface {
	CreateOrder(ctx context.Context, req OrderRequest) (json.RawMessage, error)
}
