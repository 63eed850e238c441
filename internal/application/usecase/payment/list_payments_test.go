package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestListPayments(t *testing.T) {
	ctx := context.Background()
	today := dueDate(2026, time.September, 10)
	clock := fixedClock{now: today}

	overdue := entity.NewPayment("Agua", 400, dueDate(2026, time.September, 5), "Hogar", entity.FrequencyOneTime, "teal")
	urgent := entity.NewPayment("Luz", 1200, dueDate(2026, time.September, 12), "Hogar", entity.FrequencyOneTime, "cyan")
	distant := entity.NewPayment("Predial", 5000, dueDate(2026, time.December, 1), "Hogar", entity.FrequencyAnnual, "blue")
	settled := entity.NewPayment("Gas", 600, dueDate(2026, time.September, 8), "Hogar", entity.FrequencyOneTime, "lime")
	settled.PaidAmount = 600

	repo := newFakePaymentRepo(overdue, urgent, distant, settled)
	uc := NewListPaymentsUseCase(repo, clock)

	names := func(out *ListPaymentsOutput) []string {
		result := make([]string, 0, len(out.Payments))
		for _, p := range out.Payments {
			result = append(result, p.Name)
		}
		return result
	}

	t.Run("default filter returns all unpaid ordered by due date", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListPaymentsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := names(out)
		want := []string{"Agua", "Luz", "Predial"}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})

	t.Run("urgent filter keeps the seven day window", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListPaymentsInput{Filter: FilterUrgent})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := names(out)
		if len(got) != 1 || got[0] != "Luz" {
			t.Errorf("expected only Luz, got %v", got)
		}
	})

	t.Run("overdue filter keeps past due dates", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListPaymentsInput{Filter: FilterOverdue})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := names(out)
		if len(got) != 1 || got[0] != "Agua" {
			t.Errorf("expected only Agua, got %v", got)
		}
	})

	t.Run("paid filter keeps settled payments", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListPaymentsInput{Filter: FilterPaid})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := names(out)
		if len(got) != 1 || got[0] != "Gas" {
			t.Errorf("expected only Gas, got %v", got)
		}
	})

	t.Run("unknown filter is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, ListPaymentsInput{Filter: "everything"})
		var payErr *domainerror.PaymentError
		if !errors.As(err, &payErr) || payErr.Code != domainerror.ErrCodeInvalidPaymentFilter {
			t.Errorf("expected invalid filter error, got %v", err)
		}
	})
}
