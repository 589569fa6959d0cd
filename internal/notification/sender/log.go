package sender

import (
	"context"
	"log/slog"
)

// LogSender writes deliveries to the log instead of a mail transport. Used
// in development when no SendGrid API key is configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a log-only sender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the email and reports success.
func (s *LogSender) Send(ctx context.Context, email Email) error {
	s.logger.InfoContext(ctx, "email delivery (log transport)",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
	)
	return nil
}
