package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
}

// DeleteGoalUseCase removes a savings goal. Confirmation is the caller's
// concern; deletion here is a direct mutator.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if _, err := uc.goalRepo.FindByID(ctx, input.GoalID); err != nil {
		return err
	}
	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
