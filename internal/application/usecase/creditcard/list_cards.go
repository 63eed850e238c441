package creditcard

import (
	"context"
	"fmt"
	"sort"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	"github.com/finanzas-personales/backend/internal/domain/valueobject"
)

// ListCardsOutput represents the output of listing cards: cards carrying a
// balance first, ordered by their next payment due date, paid-off cards last.
type ListCardsOutput struct {
	Cards []*entity.CreditCard
}

// ListCardsUseCase retrieves credit cards for the cards view.
type ListCardsUseCase struct {
	cardRepo adapter.CreditCardRepository
	clock    adapter.Clock
}

// NewListCardsUseCase creates a new ListCardsUseCase instance.
func NewListCardsUseCase(cardRepo adapter.CreditCardRepository, clock adapter.Clock) *ListCardsUseCase {
	return &ListCardsUseCase{
		cardRepo: cardRepo,
		clock:    clock,
	}
}

// Execute retrieves the sorted cards.
func (uc *ListCardsUseCase) Execute(ctx context.Context) (*ListCardsOutput, error) {
	cards, err := uc.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	today := uc.clock.Now()
	active := make([]*entity.CreditCard, 0, len(cards))
	paid := make([]*entity.CreditCard, 0)
	for _, c := range cards {
		if c.HasBalance() {
			active = append(active, c)
		} else {
			paid = append(paid, c)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		a := valueobject.NextCardDueDate(today, active[i].PaymentDueDateDay)
		b := valueobject.NextCardDueDate(today, active[j].PaymentDueDateDay)
		return a.Before(b)
	})

	return &ListCardsOutput{Cards: append(active, paid...)}, nil
}
