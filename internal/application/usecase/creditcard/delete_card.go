package creditcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
)

// DeleteCardInput represents the input for credit card deletion.
type DeleteCardInput struct {
	CardID uuid.UUID
}

// DeleteCardUseCase removes a credit card. Statement payments already
// generated for the card keep their (now dangling) card reference; payment
// contributions ignore it.
type DeleteCardUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewDeleteCardUseCase creates a new DeleteCardUseCase instance.
func NewDeleteCardUseCase(cardRepo adapter.CreditCardRepository) *DeleteCardUseCase {
	return &DeleteCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteCardUseCase) Execute(ctx context.Context, input DeleteCardInput) error {
	if _, err := uc.cardRepo.FindByID(ctx, input.CardID); err != nil {
		return err
	}
	if err := uc.cardRepo.Delete(ctx, input.CardID); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return nil
}
