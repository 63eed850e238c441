package payment

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/domain/valueobject"
)

// Filter selects which payments a listing returns.
type Filter string

const (
	// FilterAllUnpaid returns every payment with an outstanding balance.
	FilterAllUnpaid Filter = "all_unpaid"
	// FilterUrgent returns unpaid payments due within the next 7 days.
	FilterUrgent Filter = "urgent"
	// FilterOverdue returns unpaid payments whose due date has passed.
	FilterOverdue Filter = "overdue"
	// FilterPaid returns settled payments.
	FilterPaid Filter = "paid"
)

// urgentWindowDays is the look-ahead window of the urgent filter.
const urgentWindowDays = 7

// ListPaymentsInput represents the input for listing payments.
type ListPaymentsInput struct {
	Filter Filter
}

// ListPaymentsOutput represents the output of listing payments. Unpaid
// payments come first, ascending by due date; settled payments follow,
// descending by due date.
type ListPaymentsOutput struct {
	Payments []*entity.Payment
}

// ListPaymentsUseCase retrieves payments filtered for the payments view.
type ListPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
	clock       adapter.Clock
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(paymentRepo adapter.PaymentRepository, clock adapter.Clock) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo: paymentRepo,
		clock:       clock,
	}
}

// Execute retrieves the filtered payments.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	filter := input.Filter
	if filter == "" {
		filter = FilterAllUnpaid
	}
	switch filter {
	case FilterAllUnpaid, FilterUrgent, FilterOverdue, FilterPaid:
	default:
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentFilter,
			"filter must be all_unpaid, urgent, overdue or paid",
			domainerror.ErrInvalidPaymentFilter,
		)
	}

	payments, err := uc.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	sort.SliceStable(payments, func(i, j int) bool {
		a, b := payments[i], payments[j]
		aPaid := valueobject.IsSettled(a.Amount, a.PaidAmount)
		bPaid := valueobject.IsSettled(b.Amount, b.PaidAmount)
		if aPaid != bPaid {
			return !aPaid
		}
		if aPaid {
			return a.DueDate.After(b.DueDate)
		}
		return a.DueDate.Before(b.DueDate)
	})

	today := uc.clock.Now()
	filtered := make([]*entity.Payment, 0, len(payments))
	for _, p := range payments {
		if matchesFilter(p, filter, today) {
			filtered = append(filtered, p)
		}
	}

	return &ListPaymentsOutput{Payments: filtered}, nil
}

func matchesFilter(p *entity.Payment, filter Filter, today time.Time) bool {
	settled := valueobject.IsSettled(p.Amount, p.PaidAmount)
	days := valueobject.DaysUntil(today, p.DueDate)

	switch filter {
	case FilterUrgent:
		return !settled && days >= 0 && days <= urgentWindowDays
	case FilterOverdue:
		return !settled && days < 0
	case FilterPaid:
		return settled
	default:
		return !settled
	}
}
