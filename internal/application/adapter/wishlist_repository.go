package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// WishlistRepository defines the interface for wishlist persistence operations.
type WishlistRepository interface {
	// Create creates a new wishlist item.
	Create(ctx context.Context, item *entity.WishlistItem) error

	// FindByID retrieves a wishlist item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WishlistItem, error)

	// FindAll retrieves all wishlist items.
	FindAll(ctx context.Context) ([]*entity.WishlistItem, error)

	// Update updates an existing wishlist item.
	Update(ctx context.Context, item *entity.WishlistItem) error

	// Delete removes a wishlist item.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll atomically replaces the stored set with the given items.
	// Used by snapshot import.
	ReplaceAll(ctx context.Context, items []*entity.WishlistItem) error
}
