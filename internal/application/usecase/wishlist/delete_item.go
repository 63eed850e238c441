package wishlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
)

// DeleteItemInput represents the input for wishlist item deletion.
type DeleteItemInput struct {
	ItemID uuid.UUID
}

// DeleteItemUseCase removes a wishlist item.
type DeleteItemUseCase struct {
	wishlistRepo adapter.WishlistRepository
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(wishlistRepo adapter.WishlistRepository) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		wishlistRepo: wishlistRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, input DeleteItemInput) error {
	if _, err := uc.wishlistRepo.FindByID(ctx, input.ItemID); err != nil {
		return err
	}
	if err := uc.wishlistRepo.Delete(ctx, input.ItemID); err != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", err)
	}
	return nil
}
