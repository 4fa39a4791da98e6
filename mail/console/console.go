package console

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pure-golang/mailchannels/logger"
	"github.com/pure-golang/mailchannels/mail"
)

var _ mail.Sender = (*Sender)(nil)

// Sender writes emails to a log instead of delivering them.
// Used in development mode so no provider quota is consumed.
type Sender struct {
	log    *slog.Logger
	closed bool
}

// SenderOptions contains options for creating a Sender.
type SenderOptions struct {
	// Logger receives the rendered emails. Falls back to the context logger.
	Logger *slog.Logger
}

// NewSender creates a new console Sender.
func NewSender(options *SenderOptions) *Sender {
	s := &Sender{}
	if options != nil {
		s.log = options.Logger
	}
	return s
}

// Send logs every email: recipients, subject and plain text body.
func (s *Sender) Send(ctx context.Context, emails ...mail.Email) error {
	log := s.log
	if log == nil {
		log = logger.FromContext(ctx)
	}

	for _, email := range emails {
		log.InfoContext(ctx, Format(email),
			"to", mail.FormatContactList(mail.NormalizeContactList(email.To)),
			"subject", email.Subject,
		)
	}
	return nil
}

// Format renders the human readable block logged for an email.
func Format(email mail.Email) string {
	to := mail.FormatContactList(mail.NormalizeContactList(email.To))
	return fmt.Sprintf("\n📧 to %s: %s\n%s\n", to, email.Subject, email.Text)
}

// Close marks the sender closed. It is safe to call more than once.
func (s *Sender) Close() error {
	s.closed = true
	return nil
}
