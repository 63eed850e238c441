package creditcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/domain/valueobject"
)

// UpdateBalanceInput represents the input for a direct balance update.
type UpdateBalanceInput struct {
	CardID     uuid.UUID
	NewBalance float64
}

// UpdateBalanceOutput represents the output of a balance update.
type UpdateBalanceOutput struct {
	Card *entity.CreditCard
}

// UpdateBalanceUseCase sets a card's current balance directly, rounded to
// two decimals.
type UpdateBalanceUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewUpdateBalanceUseCase creates a new UpdateBalanceUseCase instance.
func NewUpdateBalanceUseCase(cardRepo adapter.CreditCardRepository) *UpdateBalanceUseCase {
	return &UpdateBalanceUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the balance update.
func (uc *UpdateBalanceUseCase) Execute(ctx context.Context, input UpdateBalanceInput) (*UpdateBalanceOutput, error) {
	if input.NewBalance < 0 {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeInvalidBalance,
			"balance cannot be negative",
			domainerror.ErrInvalidBalance,
		)
	}

	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		return nil, err
	}

	card.CurrentBalance = valueobject.Round2(input.NewBalance)

	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update card balance: %w", err)
	}

	return &UpdateBalanceOutput{Card: card}, nil
}
