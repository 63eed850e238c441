// Package email delivers notifications by email via Resend.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// Notifier implements the adapter.Notifier interface over the Resend API.
// Delivery is fire-and-forget: failures are logged and never surface to the
// mutation that triggered the alert.
type Notifier struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	toEmail   string
	logger    *slog.Logger
}

// NewNotifier creates a new email notifier instance.
func NewNotifier(apiKey, fromName, fromEmail, toEmail string, logger *slog.Logger) *Notifier {
	return &Notifier{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		logger:    logger,
	}
}

// Notify delivers a free-form alert message.
func (n *Notifier) Notify(ctx context.Context, message string) {
	n.send(ctx, "Recordatorio - Finanzas Personales", message)
}

// PaymentCompleted signals that a payment was fully settled.
func (n *Notifier) PaymentCompleted(ctx context.Context, payment *entity.Payment) {
	n.send(ctx,
		"Pago completado - Finanzas Personales",
		fmt.Sprintf("¡Felicidades! Has completado el pago \"%s\" de $%.2f.", payment.Name, payment.Amount),
	)
}

func (n *Notifier) send(ctx context.Context, subject, body string) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", n.fromName, n.fromEmail),
		To:      []string{n.toEmail},
		Subject: subject,
		Text:    body,
	}

	if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
		n.logger.WarnContext(ctx, "failed to send notification email",
			"subject", subject,
			"error", err,
		)
	}
}

// Ensure the implementation satisfies the interface.
var _ adapter.Notifier = (*Notifier)(nil)
