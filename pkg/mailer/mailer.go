package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer is an SMTP-backed IMailer using STARTTLS.
type Mailer struct {
	cfg    Config
	dialer *gomail.Dialer
}

// New creates a new SMTP Mailer with the given config.
func New(cfg Config) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send delivers a single plain-text message. The context is honored before
// dialing; gomail itself does not support mid-send cancellation.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.cfg.From)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Body)

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}
