package email

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"text/template"
	"time"

	"portfolio-backend/pkg/logger"
)

const notifyTimeout = 15 * time.Second

// ContactNotification is a submitted contact form as seen by the site owner.
type ContactNotification struct {
	Name       string
	Email      string
	Subject    string
	Message    string
	Platform   string
	ReceivedAt time.Time
}

const contactPlain = `New message from your portfolio contact form.

From:     {{.Name}} <{{.Email}}>
Platform: {{.Platform}}
Subject:  {{.Subject}}
Received: {{.ReceivedAt.Format "2006-01-02 15:04 MST"}}

{{.Message}}
`

var contactTemplate = template.Must(template.New("contact").Parse(contactPlain))

// ContactNotifier forwards contact submissions to the owner without blocking the request.
type ContactNotifier struct {
	sender Sender
	to     string
	wg     sync.WaitGroup
}

// NewContactNotifier returns a notifier that does nothing when to is empty.
func NewContactNotifier(sender Sender, to string) *ContactNotifier {
	return &ContactNotifier{sender: sender, to: to}
}

// NotifyContact delivers in the background; failures are only logged.
func (n *ContactNotifier) NotifyContact(c ContactNotification) {
	if n == nil || n.sender == nil || n.to == "" {
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := n.send(ctx, c); err != nil {
			logger.Warn("contact notification failed", err, map[string]interface{}{
				"from": c.Email,
			})
		}
	}()
}

func (n *ContactNotifier) send(ctx context.Context, c ContactNotification) error {
	body := &bytes.Buffer{}
	if err := contactTemplate.Execute(body, c); err != nil {
		return fmt.Errorf("while templating contact email: %w", err)
	}

	return n.sender.Send(ctx, Message{
		To:      []string{n.to},
		ReplyTo: c.Email,
		Subject: "Portfolio contact: " + c.Subject,
		Body:    body.String(),
	})
}

// Wait blocks until in-flight notifications finish, used on shutdown.
func (n *ContactNotifier) Wait() {
	if n != nil {
		n.wg.Wait()
	}
}
