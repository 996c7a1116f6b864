// Package mail delivers contact-form notifications. The worker picks
// the SendGrid implementation when an API key is configured and falls
// back to logging the message otherwise.
package mail

import "context"

// Message is one outbound notification email.
type Message struct {
	FromName  string
	FromEmail string
	ToName    string
	ToEmail   string
	Subject   string
	TextBody  string
}

// Mailer sends a single message. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
