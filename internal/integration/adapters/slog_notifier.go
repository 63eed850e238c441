package adapters

import (
	"context"
	"log/slog"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// slogNotifier implements the adapter.Notifier interface by writing alerts
// to the structured log. It is the default delivery channel when no email
// notifier is configured.
type slogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a new log-backed notifier instance.
func NewSlogNotifier(logger *slog.Logger) adapter.Notifier {
	return &slogNotifier{
		logger: logger,
	}
}

// Notify delivers a free-form alert message.
func (n *slogNotifier) Notify(ctx context.Context, message string) {
	n.logger.InfoContext(ctx, "notification", "message", message)
}

// PaymentCompleted signals that a payment was fully settled.
func (n *slogNotifier) PaymentCompleted(ctx context.Context, payment *entity.Payment) {
	n.logger.InfoContext(ctx, "payment completed",
		"payment_id", payment.ID,
		"name", payment.Name,
		"amount", payment.Amount,
	)
}
