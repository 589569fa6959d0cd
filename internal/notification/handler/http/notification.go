package http

import (
	"log/slog"
	"net/http"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/notification/sender"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httputil"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/logger"
	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/validator"
)

// NotificationHandler exposes the email relay over HTTP.
type NotificationHandler struct {
	sender sender.Sender
	logger *slog.Logger
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(s sender.Sender, l *slog.Logger) *NotificationHandler {
	return &NotificationHandler{sender: s, logger: l}
}

type sendEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// SendEmail handles POST /api/v1/notifications/email. Delivery is a single
// attempt; a transport rejection maps to a 500 so the caller can decide
// whether the failure matters.
func (h *NotificationHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	err := h.sender.Send(r.Context(), sender.Email{
		To:      req.To,
		Subject: req.Subject,
		Text:    req.Text,
		HTML:    req.HTML,
	})
	if err != nil {
		logger.WithContext(r.Context(), h.logger).Error("email delivery failed",
			slog.String("to", req.To),
			slog.String("error", err.Error()),
		)
		httputil.WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Failed to send email",
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Email sent successfully",
	})
}
