package sender

import "context"

// Email is a single outbound message.
type Email struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers an email through a mail transport. One attempt per call;
// callers decide what a failed delivery means.
type Sender interface {
	Send(ctx context.Context, email Email) error
}
