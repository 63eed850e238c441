package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

// SetProjectionInput represents the input for configuring a goal's
// recurring-contribution plan.
type SetProjectionInput struct {
	GoalID     uuid.UUID
	Amount     float64
	Frequency  entity.Frequency
	TargetDate *time.Time
}

// SetProjectionOutput represents the output of setting a projection.
type SetProjectionOutput struct {
	Goal *entity.SavingsGoal
}

// SetProjectionUseCase attaches or replaces a goal's projection.
type SetProjectionUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewSetProjectionUseCase creates a new SetProjectionUseCase instance.
func NewSetProjectionUseCase(goalRepo adapter.GoalRepository) *SetProjectionUseCase {
	return &SetProjectionUseCase{
		goalRepo: goalRepo,
	}
}

// Execute sets the projection.
func (uc *SetProjectionUseCase) Execute(ctx context.Context, input SetProjectionInput) (*SetProjectionOutput, error) {
	if !input.Frequency.IsValid() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidProjection,
			"projection frequency is not valid",
			domainerror.ErrInvalidProjection,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	goal.Projection = &entity.Projection{
		Amount:     input.Amount,
		Frequency:  input.Frequency,
		TargetDate: input.TargetDate,
	}

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal projection: %w", err)
	}

	return &SetProjectionOutput{Goal: goal}, nil
}
