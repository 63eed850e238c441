package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/domain/valueobject"
)

// ContributeToGoalInput represents the input for a goal contribution.
type ContributeToGoalInput struct {
	GoalID uuid.UUID
	Amount float64
}

// ContributeToGoalOutput represents the output of a goal contribution.
type ContributeToGoalOutput struct {
	Goal *entity.SavingsGoal
	// SpawnedGoal is the successor goal created when completing a goal with
	// a recurring projection; nil otherwise.
	SpawnedGoal *entity.SavingsGoal
	Completed   bool
}

// ContributeToGoalUseCase applies a monetary contribution to a savings goal.
// Overflow beyond the target is discarded; completing a goal that carries a
// recurring projection freezes the original and spawns a fresh successor
// with the target date advanced one period.
type ContributeToGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewContributeToGoalUseCase creates a new ContributeToGoalUseCase instance.
func NewContributeToGoalUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *ContributeToGoalUseCase {
	return &ContributeToGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute performs the contribution.
func (uc *ContributeToGoalUseCase) Execute(ctx context.Context, input ContributeToGoalInput) (*ContributeToGoalOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"contribution amount must be greater than zero",
			domainerror.ErrInvalidContribution,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	goal.SavedAmount = valueobject.ClampContribution(goal.TargetAmount, goal.SavedAmount, input.Amount)
	completed := goal.IsCompleted()

	if completed && goal.HasRecurringProjection() {
		spawned := spawnSuccessor(goal, uc.clock.Now())

		// The original is now a completed one-off; recurrence moves to the
		// successor.
		goal.Projection.Frequency = entity.FrequencyOneTime

		if err := uc.goalRepo.SaveBatch(ctx, []*entity.SavingsGoal{goal, spawned}); err != nil {
			return nil, fmt.Errorf("failed to save goal and successor: %w", err)
		}

		return &ContributeToGoalOutput{Goal: goal, SpawnedGoal: spawned, Completed: true}, nil
	}

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &ContributeToGoalOutput{Goal: goal, Completed: completed}, nil
}

// spawnSuccessor builds the next-period copy of a completed recurring goal:
// same name, target and plan, nothing saved, target date advanced.
func spawnSuccessor(goal *entity.SavingsGoal, now time.Time) *entity.SavingsGoal {
	nextTarget := valueobject.Advance(*goal.Projection.TargetDate, goal.Projection.Frequency)

	return &entity.SavingsGoal{
		ID:           uuid.New(),
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount,
		SavedAmount:  0,
		Category:     goal.Category,
		Priority:     goal.Priority,
		Color:        goal.Color,
		CreatedAt:    now.UTC(),
		Projection: &entity.Projection{
			Amount:     goal.Projection.Amount,
			Frequency:  goal.Projection.Frequency,
			TargetDate: &nextTarget,
		},
	}
}
