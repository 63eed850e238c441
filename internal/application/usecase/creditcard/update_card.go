package creditcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// UpdateCardInput represents the input for credit card update. Nil fields
// are left unchanged. Editing the cut-off day mid-cycle does not reset the
// processed-cycle marker.
type UpdateCardInput struct {
	CardID            uuid.UUID
	Name              *string
	CreditLimit       *float64
	CutOffDay         *int
	PaymentDueDateDay *int
}

// UpdateCardOutput represents the output of credit card update.
type UpdateCardOutput struct {
	Card *entity.CreditCard
}

// UpdateCardUseCase handles credit card edits.
type UpdateCardUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewUpdateCardUseCase creates a new UpdateCardUseCase instance.
func NewUpdateCardUseCase(cardRepo adapter.CreditCardRepository) *UpdateCardUseCase {
	return &UpdateCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the credit card update.
func (uc *UpdateCardUseCase) Execute(ctx context.Context, input UpdateCardInput) (*UpdateCardOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		return nil, err
	}

	limit := card.CreditLimit
	if input.CreditLimit != nil {
		limit = *input.CreditLimit
	}
	cutOff := card.CutOffDay
	if input.CutOffDay != nil {
		cutOff = *input.CutOffDay
	}
	dueDay := card.PaymentDueDateDay
	if input.PaymentDueDateDay != nil {
		dueDay = *input.PaymentDueDateDay
	}
	if err := validateCardFields(limit, cutOff, dueDay); err != nil {
		return nil, err
	}

	if input.Name != nil {
		card.Name = *input.Name
	}
	card.CreditLimit = limit
	card.CutOffDay = cutOff
	card.PaymentDueDateDay = dueDay

	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	return &UpdateCardOutput{Card: card}, nil
}
