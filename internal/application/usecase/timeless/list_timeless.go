package timeless

import (
	"context"
	"fmt"
	"sort"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// ListTimelessOutput represents the output of listing timeless payments:
// in-progress payments first (oldest first), completed payments last.
type ListTimelessOutput struct {
	Payments []*entity.TimelessPayment
}

// ListTimelessUseCase retrieves timeless payments for the debts view.
type ListTimelessUseCase struct {
	timelessRepo adapter.TimelessPaymentRepository
}

// NewListTimelessUseCase creates a new ListTimelessUseCase instance.
func NewListTimelessUseCase(timelessRepo adapter.TimelessPaymentRepository) *ListTimelessUseCase {
	return &ListTimelessUseCase{
		timelessRepo: timelessRepo,
	}
}

// Execute retrieves the sorted timeless payments.
func (uc *ListTimelessUseCase) Execute(ctx context.Context) (*ListTimelessOutput, error) {
	payments, err := uc.timelessRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeless payments: %w", err)
	}

	sort.SliceStable(payments, func(i, j int) bool {
		if payments[i].IsCompleted != payments[j].IsCompleted {
			return !payments[i].IsCompleted
		}
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	})

	return &ListTimelessOutput{Payments: payments}, nil
}
