package creditcard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

type fakeCardRepo struct {
	cards map[uuid.UUID]*entity.CreditCard
	order []uuid.UUID
}

func newFakeCardRepo(cards ...*entity.CreditCard) *fakeCardRepo {
	r := &fakeCardRepo{cards: make(map[uuid.UUID]*entity.CreditCard)}
	for _, c := range cards {
		r.cards[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return r
}

func (r *fakeCardRepo) Create(_ context.Context, c *entity.CreditCard) error {
	r.cards[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *fakeCardRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	c, ok := r.cards[id]
	if !ok {
		return nil, domainerror.NewCardError(domainerror.ErrCodeCardNotFound, "card not found", domainerror.ErrCardNotFound)
	}
	return c, nil
}

func (r *fakeCardRepo) FindAll(_ context.Context) ([]*entity.CreditCard, error) {
	out := make([]*entity.CreditCard, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.cards[id])
	}
	return out, nil
}

func (r *fakeCardRepo) Update(_ context.Context, c *entity.CreditCard) error {
	r.cards[c.ID] = c
	return nil
}

func (r *fakeCardRepo) SaveBatch(_ context.Context, cards []*entity.CreditCard) error {
	for _, c := range cards {
		r.cards[c.ID] = c
	}
	return nil
}

func (r *fakeCardRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.cards, id)
	return nil
}

func (r *fakeCardRepo) ReplaceAll(_ context.Context, cards []*entity.CreditCard) error {
	r.cards = make(map[uuid.UUID]*entity.CreditCard)
	r.order = nil
	for _, c := range cards {
		r.cards[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return nil
}

func (r *fakeCardRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.cards)), nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	r.payments[p.ID] = p
	return nil
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, domainerror.NewPaymentError(domainerror.ErrCodePaymentNotFound, "payment not found", domainerror.ErrPaymentNotFound)
	}
	return p, nil
}

func (r *fakePaymentRepo) FindAll(_ context.Context) ([]*entity.Payment, error) {
	out := make([]*entity.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, p *entity.Payment) error {
	r.payments[p.ID] = p
	return nil
}

func (r *fakePaymentRepo) SaveBatch(_ context.Context, payments []*entity.Payment) error {
	for _, p := range payments {
		r.payments[p.ID] = p
	}
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.payments, id)
	return nil
}

func (r *fakePaymentRepo) ReplaceAll(_ context.Context, payments []*entity.Payment) error {
	r.payments = make(map[uuid.UUID]*entity.Payment)
	for _, p := range payments {
		r.payments[p.ID] = p
	}
	return nil
}

func (r *fakePaymentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.payments)), nil
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

func TestRunCutOffCycle(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	t.Run("materializes a statement on the cut-off day", func(t *testing.T) {
		card := entity.NewCreditCard("BBVA Azul", 50000, 3000, 15, 5, "purple")
		paymentRepo := newFakePaymentRepo()
		notifier := &fakeNotifier{}
		uc := NewRunCutOffCycleUseCase(newFakeCardRepo(card), paymentRepo, notifier, fixedClock{today})

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.GeneratedPayments) != 1 {
			t.Fatalf("expected one generated payment, got %d", len(out.GeneratedPayments))
		}

		statement := out.GeneratedPayments[0]
		if statement.Name != "Pago Tarjeta BBVA Azul" {
			t.Errorf("statement name = %q", statement.Name)
		}
		if statement.Amount != 3000 {
			t.Errorf("statement amount = %v, want the card balance", statement.Amount)
		}
		if statement.Category != entity.StatementCategory {
			t.Errorf("statement category = %q", statement.Category)
		}
		if statement.CreditCardID == nil || *statement.CreditCardID != card.ID {
			t.Error("statement must link back to the card")
		}
		wantDue := time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)
		if !statement.DueDate.Equal(wantDue) {
			t.Errorf("statement due date = %v, want %v", statement.DueDate, wantDue)
		}
		if card.LastCutOffProcessed != "2024-2" {
			t.Errorf("cycle token = %q, want 2024-2", card.LastCutOffProcessed)
		}
		if len(notifier.messages) != 1 {
			t.Errorf("expected one notification, got %d", len(notifier.messages))
		}
	})

	t.Run("re-running the same cycle is idempotent", func(t *testing.T) {
		card := entity.NewCreditCard("BBVA Azul", 50000, 3000, 15, 5, "purple")
		paymentRepo := newFakePaymentRepo()
		notifier := &fakeNotifier{}
		uc := NewRunCutOffCycleUseCase(newFakeCardRepo(card), paymentRepo, notifier, fixedClock{today})

		for i := 0; i < 3; i++ {
			if _, err := uc.Execute(ctx); err != nil {
				t.Fatalf("run %d failed: %v", i, err)
			}
		}
		if len(paymentRepo.payments) != 1 {
			t.Errorf("expected one statement after repeated runs, got %d", len(paymentRepo.payments))
		}
		if len(notifier.messages) != 1 {
			t.Errorf("expected one notification after repeated runs, got %d", len(notifier.messages))
		}
	})

	t.Run("next month generates a fresh statement", func(t *testing.T) {
		card := entity.NewCreditCard("BBVA Azul", 50000, 3000, 15, 5, "purple")
		card.LastCutOffProcessed = "2024-1"
		paymentRepo := newFakePaymentRepo()
		uc := NewRunCutOffCycleUseCase(newFakeCardRepo(card), paymentRepo, &fakeNotifier{}, fixedClock{today})

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.GeneratedPayments) != 1 {
			t.Errorf("stale cycle token must not block generation, got %d payments", len(out.GeneratedPayments))
		}
	})

	t.Run("skips cards off their cut-off day", func(t *testing.T) {
		card := entity.NewCreditCard("Santander Oro", 30000, 2000, 20, 10, "teal")
		uc := NewRunCutOffCycleUseCase(newFakeCardRepo(card), newFakePaymentRepo(), &fakeNotifier{}, fixedClock{today})

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.GeneratedPayments) != 0 {
			t.Errorf("expected no statements, got %d", len(out.GeneratedPayments))
		}
	})

	t.Run("skips cards with no balance", func(t *testing.T) {
		card := entity.NewCreditCard("Vacia", 10000, 0, 15, 5, "rose")
		notifier := &fakeNotifier{}
		uc := NewRunCutOffCycleUseCase(newFakeCardRepo(card), newFakePaymentRepo(), notifier, fixedClock{today})

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.GeneratedPayments) != 0 {
			t.Errorf("expected no statements, got %d", len(out.GeneratedPayments))
		}
		if len(notifier.messages) != 0 {
			t.Error("an empty run must not notify")
		}
		if card.LastCutOffProcessed != "" {
			t.Error("a skipped card must not advance its cycle token")
		}
	})
}
