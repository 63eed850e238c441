package wishlist

import (
	"context"
	"fmt"
	"sort"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// CategoryGroup is one wishlist category with its items sorted by priority,
// highest first.
type CategoryGroup struct {
	Category string
	Items    []*entity.WishlistItem
}

// ListItemsOutput represents the output of listing the wishlist: items
// grouped by category, categories in alphabetical order.
type ListItemsOutput struct {
	Groups []CategoryGroup
}

// ListItemsUseCase retrieves the wishlist grouped for display.
type ListItemsUseCase struct {
	wishlistRepo adapter.WishlistRepository
}

// NewListItemsUseCase creates a new ListItemsUseCase instance.
func NewListItemsUseCase(wishlistRepo adapter.WishlistRepository) *ListItemsUseCase {
	return &ListItemsUseCase{
		wishlistRepo: wishlistRepo,
	}
}

// Execute retrieves the grouped wishlist.
func (uc *ListItemsUseCase) Execute(ctx context.Context) (*ListItemsOutput, error) {
	items, err := uc.wishlistRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist items: %w", err)
	}

	byCategory := make(map[string][]*entity.WishlistItem)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for category, categoryItems := range byCategory {
		sort.SliceStable(categoryItems, func(i, j int) bool {
			return categoryItems[i].Priority.Rank() < categoryItems[j].Priority.Rank()
		})
		groups = append(groups, CategoryGroup{Category: category, Items: categoryItems})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})

	return &ListItemsOutput{Groups: groups}, nil
}
