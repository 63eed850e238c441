package creditcard

import (
	"context"
	"fmt"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/domain/valueobject"
)

// CreateCardInput represents the input for credit card creation.
type CreateCardInput struct {
	Name              string
	CreditLimit       float64
	CurrentBalance    float64
	CutOffDay         int
	PaymentDueDateDay int
}

// CreateCardOutput represents the output of credit card creation.
type CreateCardOutput struct {
	Card *entity.CreditCard
}

// CreateCardUseCase handles credit card creation logic.
type CreateCardUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewCreateCardUseCase creates a new CreateCardUseCase instance.
func NewCreateCardUseCase(cardRepo adapter.CreditCardRepository) *CreateCardUseCase {
	return &CreateCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the credit card creation.
func (uc *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*CreateCardOutput, error) {
	if err := validateCardFields(input.CreditLimit, input.CutOffDay, input.PaymentDueDateDay); err != nil {
		return nil, err
	}

	count, err := uc.cardRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cards: %w", err)
	}

	card := entity.NewCreditCard(
		input.Name,
		input.CreditLimit,
		valueobject.Round2(input.CurrentBalance),
		input.CutOffDay,
		input.PaymentDueDateDay,
		entity.PickColor(entity.CardColors, int(count)),
	)

	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	return &CreateCardOutput{Card: card}, nil
}

func validateCardFields(creditLimit float64, cutOffDay, dueDateDay int) error {
	if creditLimit < 0 {
		return domainerror.NewCardError(
			domainerror.ErrCodeInvalidCreditLimit,
			"credit limit cannot be negative",
			domainerror.ErrInvalidCreditLimit,
		)
	}
	if cutOffDay < 1 || cutOffDay > 31 {
		return domainerror.NewCardError(
			domainerror.ErrCodeInvalidCutOffDay,
			"cut-off day must be between 1 and 31",
			domainerror.ErrInvalidCutOffDay,
		)
	}
	if dueDateDay < 1 || dueDateDay > 31 {
		return domainerror.NewCardError(
			domainerror.ErrCodeInvalidDueDateDay,
			"payment due day must be between 1 and 31",
			domainerror.ErrInvalidDueDateDay,
		)
	}
	return nil
}
