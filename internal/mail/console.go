package mail

import (
	"context"
	"log/slog"
)

// ConsoleMailer logs messages instead of sending them. Used in
// development when no SendGrid key is configured.
type ConsoleMailer struct{}

var _ Mailer = (*ConsoleMailer)(nil)

func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

func (m *ConsoleMailer) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "Email (console delivery)",
		"from", msg.FromEmail,
		"to", msg.ToEmail,
		"subject", msg.Subject,
		"body", msg.TextBody)
	return nil
}
