package timeless

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
)

// DeleteTimelessInput represents the input for timeless payment deletion.
type DeleteTimelessInput struct {
	PaymentID uuid.UUID
}

// DeleteTimelessUseCase removes a timeless payment and its contribution
// history.
type DeleteTimelessUseCase struct {
	timelessRepo adapter.TimelessPaymentRepository
}

// NewDeleteTimelessUseCase creates a new DeleteTimelessUseCase instance.
func NewDeleteTimelessUseCase(timelessRepo adapter.TimelessPaymentRepository) *DeleteTimelessUseCase {
	return &DeleteTimelessUseCase{
		timelessRepo: timelessRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteTimelessUseCase) Execute(ctx context.Context, input DeleteTimelessInput) error {
	if _, err := uc.timelessRepo.FindByID(ctx, input.PaymentID); err != nil {
		return err
	}
	if err := uc.timelessRepo.Delete(ctx, input.PaymentID); err != nil {
		return fmt.Errorf("failed to delete timeless payment: %w", err)
	}
	return nil
}
