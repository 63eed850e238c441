package reminder

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (r *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	r.payments = append(r.payments, p)
	return nil
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	for _, p := range r.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainerror.NewPaymentError(domainerror.ErrCodePaymentNotFound, "payment not found", domainerror.ErrPaymentNotFound)
}

func (r *fakePaymentRepo) FindAll(_ context.Context) ([]*entity.Payment, error) {
	return r.payments, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, _ *entity.Payment) error { return nil }

func (r *fakePaymentRepo) SaveBatch(_ context.Context, _ []*entity.Payment) error { return nil }

func (r *fakePaymentRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *fakePaymentRepo) ReplaceAll(_ context.Context, payments []*entity.Payment) error {
	r.payments = payments
	return nil
}

func (r *fakePaymentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.payments)), nil
}

type memoryTracker struct {
	seen map[string]bool
}

func newMemoryTracker() *memoryTracker {
	return &memoryTracker{seen: make(map[string]bool)}
}

func (t *memoryTracker) MarkNotified(_ context.Context, paymentID string) (bool, error) {
	if t.seen[paymentID] {
		return false, nil
	}
	t.seen[paymentID] = true
	return true, nil
}

func (t *memoryTracker) Reset(_ context.Context) error {
	t.seen = make(map[string]bool)
	return nil
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(_ context.Context, message string) {
	n.messages = append(n.messages, message)
}

func (n *fakeNotifier) PaymentCompleted(_ context.Context, _ *entity.Payment) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newPayment(name string, amount, paid float64, due time.Time) *entity.Payment {
	p := entity.NewPayment(name, amount, due, "Hogar", entity.FrequencyOneTime, "teal")
	p.PaidAmount = paid
	return p
}

func TestSendDueReminders(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, time.September, 9, 8, 0, 0, 0, time.UTC)
	day := func(d int) time.Time {
		return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("alerts payments inside the window", func(t *testing.T) {
		repo := &fakePaymentRepo{payments: []*entity.Payment{
			newPayment("Hoy", 100, 0, day(9)),
			newPayment("Mañana", 200, 0, day(10)),
			newPayment("Limite", 300, 0, day(12)),
			newPayment("Lejos", 400, 0, day(20)),
			newPayment("Vencido", 500, 0, day(1)),
			newPayment("Pagado", 600, 600, day(10)),
		}}
		notifier := &fakeNotifier{}
		uc := NewSendDueRemindersUseCase(repo, newMemoryTracker(), notifier, fixedClock{today})

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Sent != 3 {
			t.Fatalf("expected 3 reminders, got %d (%v)", out.Sent, notifier.messages)
		}

		joined := strings.Join(notifier.messages, "\n")
		for _, fragment := range []string{"vence hoy", "vence mañana", "vence en 3 días"} {
			if !strings.Contains(joined, fragment) {
				t.Errorf("expected a message containing %q, got:\n%s", fragment, joined)
			}
		}
	})

	t.Run("a delivered reminder is not repeated", func(t *testing.T) {
		repo := &fakePaymentRepo{payments: []*entity.Payment{
			newPayment("Luz", 1200, 0, day(10)),
		}}
		notifier := &fakeNotifier{}
		tracker := newMemoryTracker()
		uc := NewSendDueRemindersUseCase(repo, tracker, notifier, fixedClock{today})

		for i := 0; i < 3; i++ {
			if _, err := uc.Execute(ctx); err != nil {
				t.Fatalf("sweep %d failed: %v", i, err)
			}
		}
		if len(notifier.messages) != 1 {
			t.Errorf("expected a single reminder across sweeps, got %d", len(notifier.messages))
		}
	})

	t.Run("resetting the tracker re-arms reminders", func(t *testing.T) {
		repo := &fakePaymentRepo{payments: []*entity.Payment{
			newPayment("Luz", 1200, 0, day(10)),
		}}
		notifier := &fakeNotifier{}
		tracker := newMemoryTracker()
		uc := NewSendDueRemindersUseCase(repo, tracker, notifier, fixedClock{today})

		if _, err := uc.Execute(ctx); err != nil {
			t.Fatalf("first sweep failed: %v", err)
		}
		if err := tracker.Reset(ctx); err != nil {
			t.Fatalf("reset failed: %v", err)
		}
		if _, err := uc.Execute(ctx); err != nil {
			t.Fatalf("second sweep failed: %v", err)
		}
		if len(notifier.messages) != 2 {
			t.Errorf("expected the reminder to fire again after reset, got %d messages", len(notifier.messages))
		}
	})

	t.Run("reminder amount reflects the remaining balance", func(t *testing.T) {
		repo := &fakePaymentRepo{payments: []*entity.Payment{
			newPayment("Luz", 1200, 500, day(10)),
		}}
		notifier := &fakeNotifier{}
		uc := NewSendDueRemindersUseCase(repo, newMemoryTracker(), notifier, fixedClock{today})

		if _, err := uc.Execute(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notifier.messages) != 1 || !strings.Contains(notifier.messages[0], "$700.00") {
			t.Errorf("expected remaining $700.00 in the message, got %v", notifier.messages)
		}
	})
}
