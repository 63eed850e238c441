package entity

import (
	"time"

	"github.com/google/uuid"
)

// Projection is a goal's configured recurring-contribution plan: how much to
// put aside, how often, and by when the target should be reached.
type Projection struct {
	Amount     float64
	Frequency  Frequency
	TargetDate *time.Time // Date only, no time component
}

// SavingsGoal represents a savings goal being funded toward a target amount.
type SavingsGoal struct {
	ID           uuid.UUID
	Name         string
	TargetAmount float64
	SavedAmount  float64 // Never exceeds TargetAmount after a contribution
	Category     string
	Priority     Priority
	Color        string
	Projection   *Projection
	CreatedAt    time.Time
}

// NewSavingsGoal creates a new SavingsGoal entity with nothing saved yet.
func NewSavingsGoal(name string, targetAmount float64, category string, priority Priority, color string) *SavingsGoal {
	return &SavingsGoal{
		ID:           uuid.New(),
		Name:         name,
		TargetAmount: targetAmount,
		SavedAmount:  0,
		Category:     category,
		Priority:     priority,
		Color:        color,
		CreatedAt:    time.Now().UTC(),
	}
}

// Progress returns the completion percentage of the goal (0-100).
func (g *SavingsGoal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.SavedAmount / g.TargetAmount * 100
}

// IsCompleted reports whether the goal has reached its target.
func (g *SavingsGoal) IsCompleted() bool {
	return g.TargetAmount > 0 && g.SavedAmount >= g.TargetAmount
}

// HasRecurringProjection reports whether completing the goal should spawn a
// successor: a projection with a recurring frequency and a target date set.
func (g *SavingsGoal) HasRecurringProjection() bool {
	return g.Projection != nil &&
		g.Projection.Frequency.IsRecurring() &&
		g.Projection.TargetDate != nil
}
