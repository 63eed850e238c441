// Package creditcard contains credit-card use cases, including the monthly
// statement cut-off cycle engine.
package creditcard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	"github.com/finanzas-personales/backend/internal/domain/valueobject"
)

// RunCutOffCycleOutput represents the result of one cycle evaluation.
type RunCutOffCycleOutput struct {
	// GeneratedPayments are the statement payments materialized this tick.
	GeneratedPayments []*entity.Payment
	// ProcessedCards are the cards whose cycle marker was advanced.
	ProcessedCards []*entity.CreditCard
}

// RunCutOffCycleUseCase evaluates every card against today's date and
// materializes a statement payment for each card whose cut-off day is today,
// carries a balance, and has not yet been processed for the current monthly
// cycle. Safe to re-run any number of times within the same day: the cycle
// token on the card makes the evaluation idempotent.
type RunCutOffCycleUseCase struct {
	cardRepo    adapter.CreditCardRepository
	paymentRepo adapter.PaymentRepository
	notifier    adapter.Notifier
	clock       adapter.Clock
}

// NewRunCutOffCycleUseCase creates a new RunCutOffCycleUseCase instance.
func NewRunCutOffCycleUseCase(
	cardRepo adapter.CreditCardRepository,
	paymentRepo adapter.PaymentRepository,
	notifier adapter.Notifier,
	clock adapter.Clock,
) *RunCutOffCycleUseCase {
	return &RunCutOffCycleUseCase{
		cardRepo:    cardRepo,
		paymentRepo: paymentRepo,
		notifier:    notifier,
		clock:       clock,
	}
}

// Execute performs one cycle evaluation.
func (uc *RunCutOffCycleUseCase) Execute(ctx context.Context) (*RunCutOffCycleOutput, error) {
	today := uc.clock.Now()
	cycleToken := valueobject.CycleToken(today)

	cards, err := uc.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	paymentCount, err := uc.paymentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	out := &RunCutOffCycleOutput{}
	for _, card := range cards {
		if card.CutOffDay != today.Day() || card.LastCutOffProcessed == cycleToken || !card.HasBalance() {
			continue
		}

		statement := uc.buildStatementPayment(card, today, int(paymentCount)+len(out.GeneratedPayments))
		card.LastCutOffProcessed = cycleToken

		out.GeneratedPayments = append(out.GeneratedPayments, statement)
		out.ProcessedCards = append(out.ProcessedCards, card)
	}

	if len(out.GeneratedPayments) == 0 {
		return out, nil
	}

	// One batch for the payments, one for the cycle markers.
	if err := uc.paymentRepo.SaveBatch(ctx, out.GeneratedPayments); err != nil {
		return nil, fmt.Errorf("failed to append statement payments: %w", err)
	}
	if err := uc.cardRepo.SaveBatch(ctx, out.ProcessedCards); err != nil {
		return nil, fmt.Errorf("failed to mark processed cycles: %w", err)
	}

	uc.notifier.Notify(ctx, fmt.Sprintf(
		"Se ha(n) generado %d nuevo(s) pago(s) de tarjeta de crédito basado en su fecha de corte.",
		len(out.GeneratedPayments),
	))

	return out, nil
}

// buildStatementPayment snapshots the card's balance into a monthly payment
// due on the card's payment day, rolling into next month when the cycle
// spans a month boundary.
func (uc *RunCutOffCycleUseCase) buildStatementPayment(card *entity.CreditCard, today time.Time, ordinal int) *entity.Payment {
	cutOff := time.Date(today.Year(), today.Month(), card.CutOffDay, 0, 0, 0, 0, today.Location())
	cardID := card.ID

	return &entity.Payment{
		ID:           uuid.New(),
		Name:         "Pago Tarjeta " + card.Name,
		Amount:       card.CurrentBalance,
		PaidAmount:   0,
		DueDate:      valueobject.StatementDueDate(cutOff, card.CutOffDay, card.PaymentDueDateDay),
		Category:     entity.StatementCategory,
		Frequency:    entity.FrequencyMonthly,
		Color:        entity.PickColor(entity.PaymentColors, ordinal),
		CreditCardID: &cardID,
	}
}
