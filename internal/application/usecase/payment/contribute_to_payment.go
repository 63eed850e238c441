// Package payment contains scheduled-payment use cases.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/domain/valueobject"
)

// TargetKind distinguishes what a contribution is applied to.
type TargetKind string

const (
	// TargetPayment applies the contribution to a real payment record.
	TargetPayment TargetKind = "payment"
	// TargetCard applies the contribution directly to a card's balance — the
	// target was a virtual obligation with no backing payment record.
	TargetCard TargetKind = "card"
)

// ContributionTarget identifies the recipient of a contribution.
type ContributionTarget struct {
	Kind TargetKind
	ID   uuid.UUID
}

// ContributeToPaymentInput represents the input for a payment contribution.
type ContributeToPaymentInput struct {
	Target ContributionTarget
	Amount float64
}

// ContributeToPaymentOutput represents the output of a payment contribution.
type ContributeToPaymentOutput struct {
	// Payment is the updated payment; nil when the target was a card balance.
	Payment *entity.Payment
	// SpawnedPayment is the successor occurrence created when a recurring
	// payment settles; nil otherwise.
	SpawnedPayment *entity.Payment
	// Card is the updated credit card when a balance was decremented.
	Card      *entity.CreditCard
	Completed bool
}

// ContributeToPaymentUseCase applies a monetary contribution to a payment or
// directly to a card balance. Paying a statement payment also pays down the
// linked card; settling a recurring payment freezes it to one-time and
// spawns the next occurrence.
type ContributeToPaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
	cardRepo    adapter.CreditCardRepository
	notifier    adapter.Notifier
}

// NewContributeToPaymentUseCase creates a new ContributeToPaymentUseCase instance.
func NewContributeToPaymentUseCase(
	paymentRepo adapter.PaymentRepository,
	cardRepo adapter.CreditCardRepository,
	notifier adapter.Notifier,
) *ContributeToPaymentUseCase {
	return &ContributeToPaymentUseCase{
		paymentRepo: paymentRepo,
		cardRepo:    cardRepo,
		notifier:    notifier,
	}
}

// Execute performs the contribution.
func (uc *ContributeToPaymentUseCase) Execute(ctx context.Context, input ContributeToPaymentInput) (*ContributeToPaymentOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"contribution amount must be greater than zero",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	if input.Target.Kind == TargetCard {
		return uc.contributeToCardBalance(ctx, input.Target.ID, input.Amount)
	}

	payment, err := uc.paymentRepo.FindByID(ctx, input.Target.ID)
	if err != nil {
		return nil, err
	}

	out := &ContributeToPaymentOutput{}

	// A contribution to a statement payment simultaneously pays down the
	// card balance. Exactly once per contribution call.
	if payment.CreditCardID != nil {
		card, err := uc.payDownCard(ctx, *payment.CreditCardID, input.Amount)
		if err != nil {
			return nil, err
		}
		out.Card = card
	}

	payment.PaidAmount = valueobject.ClampContribution(payment.Amount, payment.PaidAmount, input.Amount)
	out.Completed = valueobject.IsSettled(payment.Amount, payment.PaidAmount)
	out.Payment = payment

	if out.Completed && payment.Frequency.IsRecurring() {
		spawned := spawnNextOccurrence(payment)
		payment.Frequency = entity.FrequencyOneTime

		if err := uc.paymentRepo.SaveBatch(ctx, []*entity.Payment{payment, spawned}); err != nil {
			return nil, fmt.Errorf("failed to save payment and successor: %w", err)
		}
		out.SpawnedPayment = spawned
	} else {
		if err := uc.paymentRepo.Update(ctx, payment); err != nil {
			return nil, fmt.Errorf("failed to update payment: %w", err)
		}
	}

	if out.Completed {
		uc.notifier.PaymentCompleted(ctx, payment)
	}

	return out, nil
}

// contributeToCardBalance routes a virtual-obligation contribution straight
// to the card. No payment record exists or is created.
func (uc *ContributeToPaymentUseCase) contributeToCardBalance(ctx context.Context, cardID uuid.UUID, amount float64) (*ContributeToPaymentOutput, error) {
	card, err := uc.payDownCard(ctx, cardID, amount)
	if err != nil {
		return nil, err
	}
	return &ContributeToPaymentOutput{Card: card}, nil
}

// payDownCard decrements a card's balance, floored at zero and rounded to
// two decimals. A dangling card reference on a payment is ignored.
func (uc *ContributeToPaymentUseCase) payDownCard(ctx context.Context, cardID uuid.UUID, amount float64) (*entity.CreditCard, error) {
	card, err := uc.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCardNotFound) {
			return nil, nil
		}
		return nil, err
	}

	balance := card.CurrentBalance - amount
	if balance < 0 {
		balance = 0
	}
	card.CurrentBalance = valueobject.Round2(balance)

	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update card balance: %w", err)
	}
	return card, nil
}

// spawnNextOccurrence builds the successor of a settled recurring payment:
// same name, amount and frequency, due date advanced, nothing paid.
func spawnNextOccurrence(payment *entity.Payment) *entity.Payment {
	return &entity.Payment{
		ID:           uuid.New(),
		Name:         payment.Name,
		Amount:       payment.Amount,
		PaidAmount:   0,
		DueDate:      valueobject.Advance(payment.DueDate, payment.Frequency),
		Category:     payment.Category,
		Frequency:    payment.Frequency,
		Color:        payment.Color,
		CreditCardID: payment.CreditCardID,
	}
}
