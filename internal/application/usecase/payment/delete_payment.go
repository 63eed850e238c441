package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
)

// DeletePaymentInput represents the input for payment deletion.
type DeletePaymentInput struct {
	PaymentID uuid.UUID
}

// DeletePaymentUseCase removes a payment.
type DeletePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewDeletePaymentUseCase creates a new DeletePaymentUseCase instance.
func NewDeletePaymentUseCase(paymentRepo adapter.PaymentRepository) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute performs the deletion.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, input DeletePaymentInput) error {
	if _, err := uc.paymentRepo.FindByID(ctx, input.PaymentID); err != nil {
		return err
	}
	if err := uc.paymentRepo.Delete(ctx, input.PaymentID); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}
