package wishlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

// UpdateItemInput represents the input for wishlist item update. Nil fields
// are left unchanged. EstimatedAmountSet distinguishes "clear the estimate"
// from "leave it alone".
type UpdateItemInput struct {
	ItemID             uuid.UUID
	Name               *string
	Category           *string
	Priority           *entity.Priority
	EstimatedAmount    *float64
	EstimatedAmountSet bool
	URL                *string
	Distributor        *string
}

// UpdateItemOutput represents the output of wishlist item update.
type UpdateItemOutput struct {
	Item *entity.WishlistItem
}

// UpdateItemUseCase handles wishlist item edits.
type UpdateItemUseCase struct {
	wishlistRepo adapter.WishlistRepository
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase instance.
func NewUpdateItemUseCase(wishlistRepo adapter.WishlistRepository) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		wishlistRepo: wishlistRepo,
	}
}

// Execute performs the wishlist item update.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
	item, err := uc.wishlistRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return nil, domainerror.NewWishlistError(
				domainerror.ErrCodeInvalidWishlistPriority,
				"priority must be Alta, Media or Baja",
				domainerror.ErrInvalidWishlistPriority,
			)
		}
		item.Priority = *input.Priority
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.EstimatedAmountSet {
		item.EstimatedAmount = input.EstimatedAmount
	}
	if input.URL != nil {
		item.URL = *input.URL
	}
	if input.Distributor != nil {
		item.Distributor = *input.Distributor
	}

	if err := uc.wishlistRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update wishlist item: %w", err)
	}

	return &UpdateItemOutput{Item: item}, nil
}
