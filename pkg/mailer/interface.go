package mailer

import "context"

// IMailer sends email messages.
type IMailer interface {
	Send(ctx context.Context, msg Message) error
}
