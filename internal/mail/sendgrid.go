package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

// SendgridMailer sends mail through the SendGrid v3 API.
type SendgridMailer struct {
	key  string
	from *sgmail.Email
}

var _ Mailer = (*SendgridMailer)(nil)

func NewSendgridMailer(apiKey, fromName, fromEmail string) *SendgridMailer {
	return &SendgridMailer{
		key:  apiKey,
		from: sgmail.NewEmail(fromName, fromEmail),
	}
}

func (m *SendgridMailer) Send(ctx context.Context, msg Message) error {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail(msg.ToName, msg.ToEmail))

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	if msg.FromEmail != "" {
		v3.SetReplyTo(sgmail.NewEmail(msg.FromName, msg.FromEmail))
	}
	v3.AddPersonalizations(p)
	v3.AddContent(sgmail.NewContent("text/plain", msg.TextBody))

	req := sendgrid.GetRequest(m.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(v3)

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("send email: status %d: %s", res.StatusCode, res.Body)
	}

	slog.InfoContext(ctx, "Email sent via SendGrid",
		"to", msg.ToEmail,
		"subject", msg.Subject,
		"status", res.StatusCode)
	return nil
}
