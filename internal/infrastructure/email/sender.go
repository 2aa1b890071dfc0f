package email

import (
	"context"
	"fmt"

	"portfolio-backend/internal/config"
)

// Message is a plain-text email.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Sender delivers a message through one provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender picks the provider configured by EMAIL_PROVIDER.
func NewSender(cfg config.EmailConfig) (Sender, error) {
	switch cfg.Provider {
	case "smtp":
		return NewSMTPSender(cfg), nil
	case "sendgrid":
		return NewSendGridSender(cfg), nil
	case "log", "":
		return NewLogSender(), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
