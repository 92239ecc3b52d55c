// Package mailer sends transactional email over SMTP.
package mailer

import (
	"context"
	"errors"
	"log/slog"

	"gopkg.in/gomail.v2"

	"jobboard_backend/internal/platform/config"
)

// ErrNoRecipient is returned when a message has no recipient.
var ErrNoRecipient = errors.New("no recipients specified")

// Email is one outbound message.
type Email struct {
	To       string
	Subject  string
	HTMLBody string
	Body     string
}

// sender abstracts gomail.Dialer for tests.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer delivers email through an SMTP relay.
type SMTPMailer struct {
	from   string
	dialer sender
}

// NewSMTPMailer creates a mailer for the configured relay.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send delivers a single message. gomail has no context support, so ctx is
// only checked before dialing.
func (m *SMTPMailer) Send(ctx context.Context, email Email) error {
	if email.To == "" {
		return ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.dialer.DialAndSend(m.message(email))
}

func (m *SMTPMailer) message(email Email) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	if email.HTMLBody != "" {
		msg.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			msg.AddAlternative("text/plain", email.Body)
		}
	} else {
		msg.SetBody("text/plain", email.Body)
	}
	return msg
}

// LogMailer records outbound email in the log instead of sending it. It is
// used when no SMTP relay is configured outside production.
type LogMailer struct{}

// Send logs the recipient and subject. Bodies may hold credentials and are
// never logged.
func (LogMailer) Send(_ context.Context, email Email) error {
	if email.To == "" {
		return ErrNoRecipient
	}
	slog.Info("email not sent: SMTP not configured", "to", email.To, "subject", email.Subject)
	return nil
}
