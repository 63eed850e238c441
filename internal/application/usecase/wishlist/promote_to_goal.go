package wishlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// PromoteToGoalInput represents the input for wishlist promotion.
type PromoteToGoalInput struct {
	ItemID uuid.UUID
}

// PromoteToGoalOutput represents the output of wishlist promotion.
type PromoteToGoalOutput struct {
	Goal *entity.SavingsGoal
}

// PromoteToGoalUseCase converts a wishlist item into a savings goal. The
// goal starts at zero saved with the item's estimated amount as its target,
// and the item is removed from the wishlist.
type PromoteToGoalUseCase struct {
	wishlistRepo adapter.WishlistRepository
	goalRepo     adapter.GoalRepository
}

// NewPromoteToGoalUseCase creates a new PromoteToGoalUseCase instance.
func NewPromoteToGoalUseCase(wishlistRepo adapter.WishlistRepository, goalRepo adapter.GoalRepository) *PromoteToGoalUseCase {
	return &PromoteToGoalUseCase{
		wishlistRepo: wishlistRepo,
		goalRepo:     goalRepo,
	}
}

// Execute performs the promotion.
func (uc *PromoteToGoalUseCase) Execute(ctx context.Context, input PromoteToGoalInput) (*PromoteToGoalOutput, error) {
	item, err := uc.wishlistRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	count, err := uc.goalRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals: %w", err)
	}

	goal := item.ToGoal(entity.PickColor(entity.GoalColors, int(count)))
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal from wishlist item: %w", err)
	}

	// The item leaves the wishlist once the goal exists.
	if err := uc.wishlistRepo.Delete(ctx, item.ID); err != nil {
		return nil, fmt.Errorf("failed to remove promoted wishlist item: %w", err)
	}

	return &PromoteToGoalOutput{Goal: goal}, nil
}
