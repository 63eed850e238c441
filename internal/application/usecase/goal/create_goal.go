// Package goal contains savings-goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Name         string
	TargetAmount float64
	Category     string
	Priority     entity.Priority
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.TargetAmount < 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount cannot be negative",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if !input.Priority.IsValid() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPriority,
			"priority must be Alta, Media or Baja",
			domainerror.ErrInvalidGoalPriority,
		)
	}

	count, err := uc.goalRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals: %w", err)
	}

	goal := entity.NewSavingsGoal(
		input.Name,
		input.TargetAmount,
		input.Category,
		input.Priority,
		entity.PickColor(entity.GoalColors, int(count)),
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
