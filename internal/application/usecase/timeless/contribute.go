// Package timeless contains use cases for open-ended payments with no due
// date: informal debts, loans to friends, shared funds.
package timeless

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/domain/valueobject"
)

// ContributeInput represents the input for a timeless payment contribution.
type ContributeInput struct {
	PaymentID uuid.UUID
	Amount    float64
}

// ContributeOutput represents the output of a timeless payment contribution.
type ContributeOutput struct {
	Payment   *entity.TimelessPayment
	Completed bool
}

// ContributeUseCase records a contribution against a timeless payment. Each
// contribution appends an immutable history entry; the paid amount is
// clamped to the total and completion is sticky.
type ContributeUseCase struct {
	timelessRepo adapter.TimelessPaymentRepository
	clock        adapter.Clock
}

// NewContributeUseCase creates a new ContributeUseCase instance.
func NewContributeUseCase(timelessRepo adapter.TimelessPaymentRepository, clock adapter.Clock) *ContributeUseCase {
	return &ContributeUseCase{
		timelessRepo: timelessRepo,
		clock:        clock,
	}
}

// Execute performs the contribution.
func (uc *ContributeUseCase) Execute(ctx context.Context, input ContributeInput) (*ContributeOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewTimelessError(
			domainerror.ErrCodeInvalidTotalAmount,
			"contribution amount must be greater than zero",
			domainerror.ErrInvalidContribution,
		)
	}

	payment, err := uc.timelessRepo.FindByID(ctx, input.PaymentID)
	if err != nil {
		return nil, err
	}

	newPaid := valueobject.Round2(payment.PaidAmount + input.Amount)
	completed := newPaid >= payment.TotalAmount
	if completed {
		newPaid = payment.TotalAmount
	}

	payment.PaidAmount = newPaid
	payment.IsCompleted = payment.IsCompleted || completed
	payment.Contributions = append(payment.Contributions, entity.TimelessContribution{
		ID:     uuid.New(),
		Amount: input.Amount,
		Date:   uc.clock.Now().UTC(),
	})

	if err := uc.timelessRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update timeless payment: %w", err)
	}

	return &ContributeOutput{Payment: payment, Completed: payment.IsCompleted}, nil
}
