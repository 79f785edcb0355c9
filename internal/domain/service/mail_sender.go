package service

import (
	"context"
	"errors"
)

// ErrMailRejected marks a delivery that can never succeed, such as a bad recipient.
// Senders wrap it; everything else they return is treated as transient.
var ErrMailRejected = errors.New("mail rejected")

// Mail is a rendered message ready for transport.
type Mail struct {
	To       string
	Subject  string
	HTMLBody string
}

// MailSender delivers a rendered message. Used by the mail worker only.
type MailSender interface {
	Send(ctx context.Context, mail *Mail) error
}

// MailRenderer turns a mail event into a message.
type MailRenderer interface {
	Render(event *MailEvent) (*Mail, error)
}
