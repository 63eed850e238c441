// Package dashboard contains the read-only aggregation use case behind the
// dashboard view. Everything here is derived on demand from current store
// state; nothing is persisted.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	"github.com/finanzas-personales/backend/internal/domain/valueobject"
)

// upcomingLimit caps the merged obligations list on the dashboard.
const upcomingLimit = 5

// topGoalsLimit caps the goal progress ranking on the dashboard.
const topGoalsLimit = 3

// UpcomingObligation is one entry in the merged obligations view. Virtual
// entries stand in for a card balance that has no real statement payment
// yet; contributions to them route to the card.
type UpcomingObligation struct {
	ID        uuid.UUID
	Name      string
	Remaining float64
	DueDate   time.Time
	Category  string
	Color     string
	IsVirtual bool
	CardID    *uuid.UUID
}

// CategorySpend is one category's share of the current month's committed
// payment amounts.
type CategorySpend struct {
	Category   string
	Amount     float64
	Percentage float64
}

// GoalProgress is one entry in the top in-progress goals ranking.
type GoalProgress struct {
	Goal     *entity.SavingsGoal
	Progress float64
}

// GetSummaryOutput represents the aggregated dashboard view.
type GetSummaryOutput struct {
	Upcoming       []UpcomingObligation
	MonthlyPaid    float64
	MonthlyPending float64
	TotalSavings   float64
	CategorySpend  []CategorySpend
	TopGoals       []GoalProgress
}

// GetSummaryUseCase computes the dashboard summary.
type GetSummaryUseCase struct {
	goalRepo    adapter.GoalRepository
	paymentRepo adapter.PaymentRepository
	cardRepo    adapter.CreditCardRepository
	clock       adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	goalRepo adapter.GoalRepository,
	paymentRepo adapter.PaymentRepository,
	cardRepo adapter.CreditCardRepository,
	clock adapter.Clock,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		goalRepo:    goalRepo,
		paymentRepo: paymentRepo,
		cardRepo:    cardRepo,
		clock:       clock,
	}
}

// Execute computes the summary from current store state.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	payments, err := uc.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	cards, err := uc.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}

	today := uc.clock.Now()

	out := &GetSummaryOutput{
		Upcoming:     uc.upcomingObligations(payments, cards, today),
		TotalSavings: totalSavings(goals),
		TopGoals:     topGoals(goals),
	}
	out.MonthlyPaid, out.MonthlyPending = monthlyTotals(payments, today)
	out.CategorySpend = categorySpend(payments, today)
	return out, nil
}

// upcomingObligations merges unpaid payments with virtual card entries. A
// card contributes a virtual entry only while no unpaid payment references
// it.
func (uc *GetSummaryUseCase) upcomingObligations(payments []*entity.Payment, cards []*entity.CreditCard, today time.Time) []UpcomingObligation {
	obligations := make([]UpcomingObligation, 0, len(payments))
	cardsWithUnpaid := make(map[uuid.UUID]bool)

	for _, p := range payments {
		if valueobject.IsSettled(p.Amount, p.PaidAmount) {
			continue
		}
		if p.CreditCardID != nil {
			cardsWithUnpaid[*p.CreditCardID] = true
		}
		obligations = append(obligations, UpcomingObligation{
			ID:        p.ID,
			Name:      p.Name,
			Remaining: p.Remaining(),
			DueDate:   p.DueDate,
			Category:  p.Category,
			Color:     p.Color,
			CardID:    p.CreditCardID,
		})
	}

	for _, c := range cards {
		if !c.HasBalance() || cardsWithUnpaid[c.ID] {
			continue
		}
		cardID := c.ID
		obligations = append(obligations, UpcomingObligation{
			ID:        c.ID,
			Name:      c.Name,
			Remaining: c.CurrentBalance,
			DueDate:   valueobject.NextCardDueDate(today, c.PaymentDueDateDay),
			Category:  entity.StatementCategory,
			Color:     c.Color,
			IsVirtual: true,
			CardID:    &cardID,
		})
	}

	sort.SliceStable(obligations, func(i, j int) bool {
		return obligations[i].DueDate.Before(obligations[j].DueDate)
	})
	if len(obligations) > upcomingLimit {
		obligations = obligations[:upcomingLimit]
	}
	return obligations
}

func monthlyTotals(payments []*entity.Payment, today time.Time) (paid, pending float64) {
	for _, p := range payments {
		if !sameMonth(p.DueDate, today) {
			continue
		}
		paid += p.PaidAmount
		if remaining := p.Amount - p.PaidAmount; remaining > 0 {
			pending += remaining
		}
	}
	return valueobject.Round2(paid), valueobject.Round2(pending)
}

// categorySpend groups this month's payments by category over committed
// amounts, not paid amounts. Percentages sum to 100 whenever there is any
// spend.
func categorySpend(payments []*entity.Payment, today time.Time) []CategorySpend {
	totals := make(map[string]float64)
	var monthTotal float64
	for _, p := range payments {
		if !sameMonth(p.DueDate, today) {
			continue
		}
		totals[p.Category] += p.Amount
		monthTotal += p.Amount
	}

	spend := make([]CategorySpend, 0, len(totals))
	for category, amount := range totals {
		pct := 0.0
		if monthTotal > 0 {
			pct = amount / monthTotal * 100
		}
		spend = append(spend, CategorySpend{
			Category:   category,
			Amount:     valueobject.Round2(amount),
			Percentage: pct,
		})
	}
	sort.Slice(spend, func(i, j int) bool {
		if spend[i].Amount != spend[j].Amount {
			return spend[i].Amount > spend[j].Amount
		}
		return spend[i].Category < spend[j].Category
	})
	return spend
}

func totalSavings(goals []*entity.SavingsGoal) float64 {
	var total float64
	for _, g := range goals {
		total += g.SavedAmount
	}
	return valueobject.Round2(total)
}

func topGoals(goals []*entity.SavingsGoal) []GoalProgress {
	ranking := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		if g.TargetAmount <= 0 || g.IsCompleted() {
			continue
		}
		ranking = append(ranking, GoalProgress{Goal: g, Progress: g.Progress()})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Progress > ranking[j].Progress
	})
	if len(ranking) > topGoalsLimit {
		ranking = ranking[:topGoalsLimit]
	}
	return ranking
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
