package adapter

import (
	"context"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// Notifier delivers user-facing alerts. The engine treats delivery as
// fire-and-forget: implementations log failures and never block a mutation.
type Notifier interface {
	// Notify delivers a free-form alert message.
	Notify(ctx context.Context, message string)

	// PaymentCompleted signals that a payment was fully settled.
	PaymentCompleted(ctx context.Context, payment *entity.Payment)
}

// ReminderTracker records which payments have already had a reminder
// delivered this session, to prevent duplicate alerts on re-evaluation.
type ReminderTracker interface {
	// MarkNotified marks a payment as notified for this session. It returns
	// true when the payment had not been marked before (i.e. the caller owns
	// this reminder), false when a reminder was already delivered.
	MarkNotified(ctx context.Context, paymentID string) (bool, error)

	// Reset clears all markers (app lock / session end).
	Reset(ctx context.Context) error
}
