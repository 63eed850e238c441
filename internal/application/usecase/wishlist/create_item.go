// Package wishlist contains use cases for the purchase wishlist.
package wishlist

import (
	"context"
	"fmt"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

// CreateItemInput represents the input for wishlist item creation.
type CreateItemInput struct {
	Name            string
	Category        string
	Priority        entity.Priority
	EstimatedAmount *float64
	URL             string
	Distributor     string
}

// CreateItemOutput represents the output of wishlist item creation.
type CreateItemOutput struct {
	Item *entity.WishlistItem
}

// CreateItemUseCase handles wishlist item creation.
type CreateItemUseCase struct {
	wishlistRepo adapter.WishlistRepository
}

// NewCreateItemUseCase creates a new CreateItemUseCase instance.
func NewCreateItemUseCase(wishlistRepo adapter.WishlistRepository) *CreateItemUseCase {
	return &CreateItemUseCase{
		wishlistRepo: wishlistRepo,
	}
}

// Execute performs the wishlist item creation.
func (uc *CreateItemUseCase) Execute(ctx context.Context, input CreateItemInput) (*CreateItemOutput, error) {
	if input.Name == "" || input.Category == "" {
		return nil, domainerror.NewWishlistError(
			domainerror.ErrCodeMissingWishlistFields,
			"name and category are required",
			nil,
		)
	}
	if !input.Priority.IsValid() {
		return nil, domainerror.NewWishlistError(
			domainerror.ErrCodeInvalidWishlistPriority,
			"priority must be Alta, Media or Baja",
			domainerror.ErrInvalidWishlistPriority,
		)
	}

	item := entity.NewWishlistItem(
		input.Name,
		input.Category,
		input.Priority,
		input.EstimatedAmount,
		input.URL,
		input.Distributor,
	)

	if err := uc.wishlistRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create wishlist item: %w", err)
	}

	return &CreateItemOutput{Item: item}, nil
}
