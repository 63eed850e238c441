package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

// CreatePaymentInput represents the input for payment creation.
type CreatePaymentInput struct {
	Name      string
	Amount    float64
	DueDate   time.Time
	Category  string
	Frequency entity.Frequency
}

// CreatePaymentOutput represents the output of payment creation.
type CreatePaymentOutput struct {
	Payment *entity.Payment
}

// CreatePaymentUseCase handles payment creation logic.
type CreatePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewCreatePaymentUseCase creates a new CreatePaymentUseCase instance.
func NewCreatePaymentUseCase(paymentRepo adapter.PaymentRepository) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute performs the payment creation.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, input CreatePaymentInput) (*CreatePaymentOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be greater than zero",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	if !input.Frequency.IsValid() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency is not valid",
			domainerror.ErrInvalidFrequency,
		)
	}

	count, err := uc.paymentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	payment := entity.NewPayment(
		input.Name,
		input.Amount,
		input.DueDate,
		input.Category,
		input.Frequency,
		entity.PickColor(entity.PaymentColors, int(count)),
	)

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return &CreatePaymentOutput{Payment: payment}, nil
}
