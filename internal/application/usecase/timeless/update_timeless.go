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

// UpdateTimelessInput represents the input for timeless payment update. Nil
// fields are left unchanged. The contribution history is never edited here.
type UpdateTimelessInput struct {
	PaymentID   uuid.UUID
	Name        *string
	TotalAmount *float64
}

// UpdateTimelessOutput represents the output of timeless payment update.
type UpdateTimelessOutput struct {
	Payment *entity.TimelessPayment
}

// UpdateTimelessUseCase handles timeless payment edits. Lowering the total
// below the paid amount re-clamps the paid amount and marks the payment
// completed.
type UpdateTimelessUseCase struct {
	timelessRepo adapter.TimelessPaymentRepository
}

// NewUpdateTimelessUseCase creates a new UpdateTimelessUseCase instance.
func NewUpdateTimelessUseCase(timelessRepo adapter.TimelessPaymentRepository) *UpdateTimelessUseCase {
	return &UpdateTimelessUseCase{
		timelessRepo: timelessRepo,
	}
}

// Execute performs the timeless payment update.
func (uc *UpdateTimelessUseCase) Execute(ctx context.Context, input UpdateTimelessInput) (*UpdateTimelessOutput, error) {
	payment, err := uc.timelessRepo.FindByID(ctx, input.PaymentID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		payment.Name = *input.Name
	}
	if input.TotalAmount != nil {
		if *input.TotalAmount <= 0 {
			return nil, domainerror.NewTimelessError(
				domainerror.ErrCodeInvalidTotalAmount,
				"total amount must be greater than zero",
				domainerror.ErrInvalidTotalAmount,
			)
		}
		payment.TotalAmount = valueobject.Round2(*input.TotalAmount)
		if payment.PaidAmount >= payment.TotalAmount {
			payment.PaidAmount = payment.TotalAmount
			payment.IsCompleted = true
		}
	}

	if err := uc.timelessRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update timeless payment: %w", err)
	}

	return &UpdateTimelessOutput{Payment: payment}, nil
}
