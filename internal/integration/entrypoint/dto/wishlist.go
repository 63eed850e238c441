package dto

import (
	"github.com/finanzas-personales/backend/internal/application/usecase/wishlist"
	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// CreateWishlistItemRequest represents the request body for wishlist item
// creation.
type CreateWishlistItemRequest struct {
	Name            string   `json:"name" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	Priority        string   `json:"priority" binding:"required,oneof=Alta Media Baja"`
	EstimatedAmount *float64 `json:"estimated_amount,omitempty" binding:"omitempty,gte=0"`
	URL             string   `json:"url,omitempty"`
	Distributor     string   `json:"distributor,omitempty"`
}

// UpdateWishlistItemRequest represents the request body for wishlist item
// update.
type UpdateWishlistItemRequest struct {
	Name            *string  `json:"name,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Priority        *string  `json:"priority,omitempty" binding:"omitempty,oneof=Alta Media Baja"`
	EstimatedAmount *float64 `json:"estimated_amount,omitempty" binding:"omitempty,gte=0"`
	URL             *string  `json:"url,omitempty"`
	Distributor     *string  `json:"distributor,omitempty"`
}

// WishlistItemResponse represents a single wishlist item in API responses.
type WishlistItemResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Priority        string   `json:"priority"`
	EstimatedAmount *float64 `json:"estimated_amount,omitempty"`
	URL             string   `json:"url,omitempty"`
	Distributor     string   `json:"distributor,omitempty"`
}

// WishlistCategoryGroupResponse represents one category group in the
// wishlist view.
type WishlistCategoryGroupResponse struct {
	Category string                 `json:"category"`
	Items    []WishlistItemResponse `json:"items"`
}

// WishlistResponse represents the grouped wishlist view.
type WishlistResponse struct {
	Groups []WishlistCategoryGroupResponse `json:"groups"`
}

// ToWishlistItemResponse converts a domain WishlistItem entity to its DTO.
func ToWishlistItemResponse(item *entity.WishlistItem) WishlistItemResponse {
	return WishlistItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Category:        item.Category,
		Priority:        string(item.Priority),
		EstimatedAmount: item.EstimatedAmount,
		URL:             item.URL,
		Distributor:     item.Distributor,
	}
}

// ToWishlistResponse converts grouped wishlist output to its DTO.
func ToWishlistResponse(groups []wishlist.CategoryGroup) WishlistResponse {
	response := WishlistResponse{
		Groups: make([]WishlistCategoryGroupResponse, len(groups)),
	}
	for i, group := range groups {
		items := make([]WishlistItemResponse, len(group.Items))
		for j, item := range group.Items {
			items[j] = ToWishlistItemResponse(item)
		}
		response.Groups[i] = WishlistCategoryGroupResponse{
			Category: group.Category,
			Items:    items,
		}
	}
	return response
}
