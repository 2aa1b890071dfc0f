package email

import (
	"context"
	"strings"

	"portfolio-backend/pkg/logger"
)

// logSender only records the message, used in development.
type logSender struct{}

func NewLogSender() Sender {
	return logSender{}
}

func (logSender) Send(ctx context.Context, msg Message) error {
	logger.Info("📧 email (log provider)", map[string]interface{}{
		"to":       strings.Join(msg.To, ","),
		"reply_to": msg.ReplyTo,
		"subject":  msg.Subject,
		"body_len": len(msg.Body),
	})
	return nil
}
