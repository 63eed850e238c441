package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil fields are left
// unchanged.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	Name         *string
	TargetAmount *float64
	Category     *string
	Priority     *entity.Priority
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// UpdateGoalUseCase handles goal edits.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		goal.Name = *input.Name
	}
	if input.TargetAmount != nil {
		if *input.TargetAmount < 0 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount cannot be negative",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}
	if input.Category != nil {
		goal.Category = *input.Category
	}
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalPriority,
				"priority must be Alta, Media or Baja",
				domainerror.ErrInvalidGoalPriority,
			)
		}
		goal.Priority = *input.Priority
	}

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
