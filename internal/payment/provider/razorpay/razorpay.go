package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/payment/provider"
	apperrors "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/errors"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httpclient"
)

const ordersURL = "https://api.razorpay.com/v1/orders"

// Provider opens payment orders through the Razorpay Orders API using basic
// auth with the key id and secret.
type Provider struct {
	keyID     string
	keySecret string
	hc        *httpclient.Client
}

// New creates a Razorpay provider.
func New(keyID, keySecret string, hc *httpclient.Client) *Provider {
	return &Provider{keyID: keyID, keySecret: keySecret, hc: hc}
}

// CreateOrder opens a payment order and returns the provider response body
// verbatim. A provider rejection surfaces as a bad gateway error.
func (p *Provider) CreateOrder(ctx context.Context, orderReq provider.OrderRequest) (json.RawMessage, error) {
	body, err := json.Marshal(orderReq)
	if err != nil {
		return nil, fmt.Errorf("marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ordersURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(p.keyID, p.keySecret)

	resp, err := p.hc.Do(ctx, req)
	if err != nil {
		return nil, apperrors.BadGateway("Payment provider unreachable.")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.BadGateway(fmt.Sprintf("Payment provider rejected the order (status %d).", resp.StatusCode))
	}
	return respBody, nil
}
