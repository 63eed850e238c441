package timeless

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

type fakeTimelessRepo struct {
	payments map[uuid.UUID]*entity.TimelessPayment
}

func newFakeTimelessRepo(payments ...*entity.TimelessPayment) *fakeTimelessRepo {
	r := &fakeTimelessRepo{payments: make(map[uuid.UUID]*entity.TimelessPayment)}
	for _, p := range payments {
		r.payments[p.ID] = p
	}
	return r
}

func (r *fakeTimelessRepo) Create(_ context.Context, p *entity.TimelessPayment) error {
	r.payments[p.ID] = p
	return nil
}

func (r *fakeTimelessRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TimelessPayment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, domainerror.NewTimelessError(domainerror.ErrCodeTimelessNotFound, "timeless payment not found", domainerror.ErrTimelessNotFound)
	}
	return p, nil
}

func (r *fakeTimelessRepo) FindAll(_ context.Context) ([]*entity.TimelessPayment, error) {
	out := make([]*entity.TimelessPayment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeTimelessRepo) Update(_ context.Context, p *entity.TimelessPayment) error {
	r.payments[p.ID] = p
	return nil
}

func (r *fakeTimelessRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.payments, id)
	return nil
}

func (r *fakeTimelessRepo) ReplaceAll(_ context.Context, payments []*entity.TimelessPayment) error {
	r.payments = make(map[uuid.UUID]*entity.TimelessPayment)
	for _, p := range payments {
		r.payments[p.ID] = p
	}
	return nil
}

func (r *fakeTimelessRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.payments)), nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestContribute(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)}

	t.Run("appends a dated history entry", func(t *testing.T) {
		p := entity.NewTimelessPayment("Dentista", 6000, "cyan")
		uc := NewContributeUseCase(newFakeTimelessRepo(p), clock)

		out, err := uc.Execute(ctx, ContributeInput{PaymentID: p.ID, Amount: 1500})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Payment.PaidAmount != 1500 {
			t.Errorf("paid amount = %v, want 1500", out.Payment.PaidAmount)
		}
		if out.Completed {
			t.Error("partial contribution must not complete the debt")
		}
		if len(out.Payment.Contributions) != 1 {
			t.Fatalf("expected one history entry, got %d", len(out.Payment.Contributions))
		}
		entry := out.Payment.Contributions[0]
		if entry.Amount != 1500 {
			t.Errorf("history amount = %v, want 1500", entry.Amount)
		}
		if !entry.Date.Equal(clock.now) {
			t.Errorf("history date = %v, want the clock time", entry.Date)
		}
	})

	t.Run("overflow clamps and completes", func(t *testing.T) {
		p := entity.NewTimelessPayment("Dentista", 6000, "cyan")
		p.PaidAmount = 5500
		uc := NewContributeUseCase(newFakeTimelessRepo(p), clock)

		out, err := uc.Execute(ctx, ContributeInput{PaymentID: p.ID, Amount: 1000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Payment.PaidAmount != 6000 {
			t.Errorf("paid amount = %v, want clamped 6000", out.Payment.PaidAmount)
		}
		if !out.Completed {
			t.Error("covering the total must complete the debt")
		}
	})

	t.Run("completion is sticky", func(t *testing.T) {
		p := entity.NewTimelessPayment("Dentista", 6000, "cyan")
		p.PaidAmount = 6000
		p.IsCompleted = true
		uc := NewContributeUseCase(newFakeTimelessRepo(p), clock)

		out, err := uc.Execute(ctx, ContributeInput{PaymentID: p.ID, Amount: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Completed {
			t.Error("a completed debt stays completed")
		}
		if out.Payment.PaidAmount != 6000 {
			t.Errorf("paid amount = %v, must stay clamped", out.Payment.PaidAmount)
		}
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		p := entity.NewTimelessPayment("Dentista", 6000, "cyan")
		uc := NewContributeUseCase(newFakeTimelessRepo(p), clock)

		_, err := uc.Execute(ctx, ContributeInput{PaymentID: p.ID, Amount: 0})
		var tlErr *domainerror.TimelessError
		if !errors.As(err, &tlErr) {
			t.Errorf("expected a timeless error, got %v", err)
		}
	})

	t.Run("unknown payment id", func(t *testing.T) {
		uc := NewContributeUseCase(newFakeTimelessRepo(), clock)

		_, err := uc.Execute(ctx, ContributeInput{PaymentID: uuid.New(), Amount: 100})
		var tlErr *domainerror.TimelessError
		if !errors.As(err, &tlErr) || tlErr.Code != domainerror.ErrCodeTimelessNotFound {
			t.Errorf("expected timeless not found error, got %v", err)
		}
	})
}
