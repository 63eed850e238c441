package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func newFakePaymentRepo(payments ...*entity.Payment) *fakePaymentRepo {
	r := &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
	for _, p := range payments {
		r.payments[p.ID] = p
	}
	return r
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

type fakeCardRepo struct {
	cards map[uuid.UUID]*entity.CreditCard
}

func newFakeCardRepo(cards ...*entity.CreditCard) *fakeCardRepo {
	r := &fakeCardRepo{cards: make(map[uuid.UUID]*entity.CreditCard)}
	for _, c := range cards {
		r.cards[c.ID] = c
	}
	return r
}

func (r *fakeCardRepo) Create(_ context.Context, c *entity.CreditCard) error {
	r.cards[c.ID] = c
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
	out := make([]*entity.CreditCard, 0, len(r.cards))
	for _, c := range r.cards {
		out = append(out, c)
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
	for _, c := range cards {
		r.cards[c.ID] = c
	}
	return nil
}

func (r *fakeCardRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.cards)), nil
}

type fakeNotifier struct {
	messages  []string
	completed []string
}

func (n *fakeNotifier) Notify(_ context.Context, message string) {
	n.messages = append(n.messages, message)
}

func (n *fakeNotifier) PaymentCompleted(_ context.Context, p *entity.Payment) {
	n.completed = append(n.completed, p.Name)
}

func dueDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestContributeToPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("partial contribution accumulates", func(t *testing.T) {
		p := entity.NewPayment("Luz", 1200, dueDate(2026, time.September, 10), "Hogar", entity.FrequencyOneTime, "teal")
		notifier := &fakeNotifier{}
		uc := NewContributeToPaymentUseCase(newFakePaymentRepo(p), newFakeCardRepo(), notifier)

		out, err := uc.Execute(ctx, ContributeToPaymentInput{
			Target: ContributionTarget{Kind: TargetPayment, ID: p.ID},
			Amount: 500,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Payment.PaidAmount != 500 {
			t.Errorf("expected paid amount 500, got %v", out.Payment.PaidAmount)
		}
		if out.Completed {
			t.Error("partial contribution must not settle the payment")
		}
		if len(notifier.completed) != 0 {
			t.Error("unsettled payment must not notify completion")
		}
	})

	t.Run("settling a recurring payment spawns the next occurrence", func(t *testing.T) {
		p := entity.NewPayment("Renta", 8500, dueDate(2026, time.September, 1), "Hogar", entity.FrequencyMonthly, "teal")
		repo := newFakePaymentRepo(p)
		notifier := &fakeNotifier{}
		uc := NewContributeToPaymentUseCase(repo, newFakeCardRepo(), notifier)

		out, err := uc.Execute(ctx, ContributeToPaymentInput{
			Target: ContributionTarget{Kind: TargetPayment, ID: p.ID},
			Amount: 8500,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Completed {
			t.Fatal("expected the payment to settle")
		}
		if out.Payment.Frequency != entity.FrequencyOneTime {
			t.Errorf("settled original must freeze to one-time, got %q", out.Payment.Frequency)
		}
		if out.SpawnedPayment == nil {
			t.Fatal("expected a successor occurrence")
		}
		if out.SpawnedPayment.Frequency != entity.FrequencyMonthly {
			t.Errorf("successor keeps the frequency, got %q", out.SpawnedPayment.Frequency)
		}
		if !out.SpawnedPayment.DueDate.Equal(dueDate(2026, time.October, 1)) {
			t.Errorf("successor due date = %v, want 2026-10-01", out.SpawnedPayment.DueDate)
		}
		if out.SpawnedPayment.PaidAmount != 0 {
			t.Errorf("successor must start unpaid, got %v", out.SpawnedPayment.PaidAmount)
		}
		if len(repo.payments) != 2 {
			t.Errorf("expected both occurrences persisted, got %d", len(repo.payments))
		}
		if len(notifier.completed) != 1 || notifier.completed[0] != "Renta" {
			t.Errorf("expected one completion notification for Renta, got %v", notifier.completed)
		}
	})

	t.Run("settling a one-time payment spawns nothing", func(t *testing.T) {
		p := entity.NewPayment("Luz", 1200, dueDate(2026, time.September, 10), "Hogar", entity.FrequencyOneTime, "teal")
		repo := newFakePaymentRepo(p)
		uc := NewContributeToPaymentUseCase(repo, newFakeCardRepo(), &fakeNotifier{})

		out, err := uc.Execute(ctx, ContributeToPaymentInput{
			Target: ContributionTarget{Kind: TargetPayment, ID: p.ID},
			Amount: 1200,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Completed {
			t.Error("expected the payment to settle")
		}
		if out.SpawnedPayment != nil {
			t.Error("one-time payment must not spawn a successor")
		}
		if len(repo.payments) != 1 {
			t.Errorf("expected a single payment, got %d", len(repo.payments))
		}
	})

	t.Run("paying a statement payment pays down the card", func(t *testing.T) {
		card := entity.NewCreditCard("BBVA Azul", 50000, 3000, 15, 5, "purple")
		p := entity.NewPayment("Pago Tarjeta BBVA Azul", 3000, dueDate(2026, time.October, 5), entity.StatementCategory, entity.FrequencyMonthly, "teal")
		p.CreditCardID = &card.ID
		uc := NewContributeToPaymentUseCase(newFakePaymentRepo(p), newFakeCardRepo(card), &fakeNotifier{})

		out, err := uc.Execute(ctx, ContributeToPaymentInput{
			Target: ContributionTarget{Kind: TargetPayment, ID: p.ID},
			Amount: 1000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Card == nil {
			t.Fatal("expected the linked card in the output")
		}
		if out.Card.CurrentBalance != 2000 {
			t.Errorf("expected card balance 2000, got %v", out.Card.CurrentBalance)
		}
		if out.Payment.PaidAmount != 1000 {
			t.Errorf("expected paid amount 1000, got %v", out.Payment.PaidAmount)
		}
	})

	t.Run("virtual target pays the card directly", func(t *testing.T) {
		card := entity.NewCreditCard("BBVA Azul", 50000, 3000, 15, 5, "purple")
		repo := newFakePaymentRepo()
		uc := NewContributeToPaymentUseCase(repo, newFakeCardRepo(card), &fakeNotifier{})

		out, err := uc.Execute(ctx, ContributeToPaymentInput{
			Target: ContributionTarget{Kind: TargetCard, ID: card.ID},
			Amount: 1000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Payment != nil {
			t.Error("virtual contribution must not create a payment record")
		}
		if out.Card.CurrentBalance != 2000 {
			t.Errorf("expected card balance 2000, got %v", out.Card.CurrentBalance)
		}
		if len(repo.payments) != 0 {
			t.Error("virtual contribution must leave the payment store untouched")
		}
	})

	t.Run("card balance floors at zero", func(t *testing.T) {
		card := entity.NewCreditCard("BBVA Azul", 50000, 500, 15, 5, "purple")
		uc := NewContributeToPaymentUseCase(newFakePaymentRepo(), newFakeCardRepo(card), &fakeNotifier{})

		out, err := uc.Execute(ctx, ContributeToPaymentInput{
			Target: ContributionTarget{Kind: TargetCard, ID: card.ID},
			Amount: 1000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Card.CurrentBalance != 0 {
			t.Errorf("expected card balance floored at 0, got %v", out.Card.CurrentBalance)
		}
	})

	t.Run("dangling card reference is ignored", func(t *testing.T) {
		orphanID := uuid.New()
		p := entity.NewPayment("Pago Tarjeta Vieja", 3000, dueDate(2026, time.October, 5), entity.StatementCategory, entity.FrequencyMonthly, "teal")
		p.CreditCardID = &orphanID
		uc := NewContributeToPaymentUseCase(newFakePaymentRepo(p), newFakeCardRepo(), &fakeNotifier{})

		out, err := uc.Execute(ctx, ContributeToPaymentInput{
			Target: ContributionTarget{Kind: TargetPayment, ID: p.ID},
			Amount: 500,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Card != nil {
			t.Error("orphaned card link must not surface a card")
		}
		if out.Payment.PaidAmount != 500 {
			t.Errorf("payment must still accumulate, got %v", out.Payment.PaidAmount)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc := NewContributeToPaymentUseCase(newFakePaymentRepo(), newFakeCardRepo(), &fakeNotifier{})

		_, err := uc.Execute(ctx, ContributeToPaymentInput{
			Target: ContributionTarget{Kind: TargetPayment, ID: uuid.New()},
			Amount: -5,
		})
		var payErr *domainerror.PaymentError
		if !errors.As(err, &payErr) || payErr.Code != domainerror.ErrCodeInvalidPaymentAmount {
			t.Errorf("expected invalid amount error, got %v", err)
		}
	})
}
