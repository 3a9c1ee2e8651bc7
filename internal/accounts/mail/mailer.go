// Package mail delivers account lifecycle email. The service layer builds
// messages with the template helpers and hands them to a Mailer; delivery
// failures are the caller's problem to log, not to retry.
package mail

import (
	"context"
	"errors"
	"strings"
)

// Message is a fully rendered plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends a rendered message to a single recipient.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type disabledMailer struct {
	reason string
}

// NewDisabledMailer returns a Mailer that fails every send. Used when no
// SMTP host is configured so the rest of the app can still boot.
func NewDisabledMailer(reason string) Mailer {
	return &disabledMailer{reason: reason}
}

func (m *disabledMailer) Send(_ context.Context, _ Message) error {
	if m.reason == "" {
		return errors.New("mailer disabled")
	}
	return errors.New(m.reason)
}

func validateMessage(msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return errors.New("mail: recipient is required")
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return errors.New("mail: subject is required")
	}
	return nil
}
