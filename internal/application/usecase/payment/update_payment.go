package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

// UpdatePaymentInput represents the input for payment update. Nil fields are
// left unchanged.
type UpdatePaymentInput struct {
	PaymentID uuid.UUID
	Name      *string
	Amount    *float64
	DueDate   *time.Time
	Category  *string
	Frequency *entity.Frequency
}

// UpdatePaymentOutput represents the output of payment update.
type UpdatePaymentOutput struct {
	Payment *entity.Payment
}

// UpdatePaymentUseCase handles payment edits.
type UpdatePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewUpdatePaymentUseCase creates a new UpdatePaymentUseCase instance.
func NewUpdatePaymentUseCase(paymentRepo adapter.PaymentRepository) *UpdatePaymentUseCase {
	return &UpdatePaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute performs the payment update.
func (uc *UpdatePaymentUseCase) Execute(ctx context.Context, input UpdatePaymentInput) (*UpdatePaymentOutput, error) {
	payment, err := uc.paymentRepo.FindByID(ctx, input.PaymentID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		payment.Name = *input.Name
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, domainerror.NewPaymentError(
				domainerror.ErrCodeInvalidPaymentAmount,
				"payment amount must be greater than zero",
				domainerror.ErrInvalidPaymentAmount,
			)
		}
		payment.Amount = *input.Amount
	}
	if input.DueDate != nil {
		payment.DueDate = *input.DueDate
	}
	if input.Category != nil {
		payment.Category = *input.Category
	}
	if input.Frequency != nil {
		if !input.Frequency.IsValid() {
			return nil, domainerror.NewPaymentError(
				domainerror.ErrCodeInvalidFrequency,
				"frequency is not valid",
				domainerror.ErrInvalidFrequency,
			)
		}
		payment.Frequency = *input.Frequency
	}

	if err := uc.paymentRepo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	return &UpdatePaymentOutput{Payment: payment}, nil
}
