package http

import (
	"log/slog"
	"net/http"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/payment/provider"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/payment/service"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httputil"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/validator"
)

// PaymentHandler exposes payment operations over HTTP.
type PaymentHandler struct {
	service *service.PaymentService
	logger  *slog.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(svc *service.PaymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{service: svc, logger: logger}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type validateRequest struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

// GetKey handles GET /api/v1/payment/key.
func (h *PaymentHandler) GetKey(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"key": h.service.KeyID(),
	})
}

// CreateOrder handles POST /api/v1/payment/razorpay, passing the provider's
// order body straight through.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	body, err := h.service.CreateOrder(r.Context(), provider.OrderRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Validate handles POST /api/v1/payment/validate, verifying the checkout
// callback signature.
func (h *PaymentHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if !h.service.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		httputil.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Transaction is not legit!",
			"success": false,
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Transaction is legit!",
		"success": true,
	})
}
