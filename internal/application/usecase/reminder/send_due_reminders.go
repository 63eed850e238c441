// Package reminder contains the due-date reminder sweep.
package reminder

import (
	"context"
	"fmt"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/valueobject"
)

// reminderWindowDays is how far ahead a due date may be and still trigger a
// reminder. Overdue payments (negative day counts) are excluded; those show
// up through the overdue list filter instead.
const reminderWindowDays = 3

// SendDueRemindersOutput represents the result of a reminder sweep.
type SendDueRemindersOutput struct {
	Sent int
}

// SendDueRemindersUseCase alerts on unpaid payments due within the reminder
// window. The tracker deduplicates per session so re-running the sweep never
// repeats an alert.
type SendDueRemindersUseCase struct {
	paymentRepo adapter.PaymentRepository
	tracker     adapter.ReminderTracker
	notifier    adapter.Notifier
	clock       adapter.Clock
}

// NewSendDueRemindersUseCase creates a new SendDueRemindersUseCase instance.
func NewSendDueRemindersUseCase(
	paymentRepo adapter.PaymentRepository,
	tracker adapter.ReminderTracker,
	notifier adapter.Notifier,
	clock adapter.Clock,
) *SendDueRemindersUseCase {
	return &SendDueRemindersUseCase{
		paymentRepo: paymentRepo,
		tracker:     tracker,
		notifier:    notifier,
		clock:       clock,
	}
}

// Execute runs one reminder sweep.
func (uc *SendDueRemindersUseCase) Execute(ctx context.Context) (*SendDueRemindersOutput, error) {
	payments, err := uc.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	today := uc.clock.Now()
	sent := 0
	for _, p := range payments {
		if valueobject.IsSettled(p.Amount, p.PaidAmount) {
			continue
		}
		days := valueobject.DaysUntil(today, p.DueDate)
		if days < 0 || days > reminderWindowDays {
			continue
		}

		first, err := uc.tracker.MarkNotified(ctx, p.ID.String())
		if err != nil {
			return nil, fmt.Errorf("failed to mark reminder: %w", err)
		}
		if !first {
			continue
		}

		uc.notifier.Notify(ctx, reminderMessage(p.Name, p.Remaining(), days))
		sent++
	}

	return &SendDueRemindersOutput{Sent: sent}, nil
}

func reminderMessage(name string, remaining float64, days int) string {
	switch days {
	case 0:
		return fmt.Sprintf("El pago \"%s\" vence hoy. Restante: $%.2f", name, remaining)
	case 1:
		return fmt.Sprintf("El pago \"%s\" vence mañana. Restante: $%.2f", name, remaining)
	default:
		return fmt.Sprintf("El pago \"%s\" vence en %d días. Restante: $%.2f", name, days, remaining)
	}
}
