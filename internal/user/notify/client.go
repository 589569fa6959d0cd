package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Bilal-Raza-SWE/AutoMERNate/pkg/httpclient"
)

// Client relays emails through the notification service. Failures are the
// caller's to swallow or surface; the client itself makes exactly one attempt.
type Client struct {
	baseURL string
	http    *httpclient.Client
}

// NewClient creates a notification relay client for the given base URL.
func NewClient(baseURL string, hc *httpclient.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

type emailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// SendEmail posts an email message to the notification service.
func (c *Client) SendEmail(ctx context.Context, to, subject, text, html string) error {
	body, err := json.Marshal(emailRequest{To: to, Subject: subject, Text: text, HTML: html})
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	resp, err := c.http.Post(ctx, c.baseURL+"/api/v1/notifications/email", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("call notification service: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return httpclient.ParseResponseError(resp, "notification-service")
	}
	_ = resp.Body.Close()
	return nil
}

// ResetEmail renders the password-reset message for the given user and link.
func ResetEmail(name, resetLink string) (subject, text, html string) {
	subject = "Password Reset Request - AutoMERNate"
	text = fmt.Sprintf(
		"Hello %s,\n\nYou requested a password reset. Click the link below to reset your password:\n\n%s\n\nThis link will expire in 1 hour.\n\nIf you didn't request this, please ignore this email.\n\nBest regards,\nAutoMERNate Team",
		name, resetLink,
	)
	html = fmt.Sprintf(
		`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Password Reset Request</h2>
  <p>Hello <strong>%s</strong>,</p>
  <p>You requested a password reset for your AutoMERNate account.</p>
  <p><a href="%s">Reset Password</a></p>
  <p>This link will expire in 1 hour.</p>
  <p>If you didn't request this, please ignore this email.</p>
  <p>Best regards,<br>AutoMERNate Team</p>
</div>`,
		name, resetLink,
	)
	return subject, text, html
}
