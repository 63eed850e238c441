package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/integration/persistence/model"
)

// wishlistRepository implements the adapter.WishlistRepository interface.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a new wishlist repository instance.
func NewWishlistRepository(db *gorm.DB) adapter.WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

// Create creates a new wishlist item in the database.
func (r *wishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	itemModel := model.WishlistItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a wishlist item by its ID.
func (r *wishlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WishlistItem, error) {
	var itemModel model.WishlistItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewWishlistError(
				domainerror.ErrCodeWishlistItemNotFound,
				"wishlist item not found",
				domainerror.ErrWishlistItemNotFound,
			)
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindAll retrieves all wishlist items.
func (r *wishlistRepository) FindAll(ctx context.Context) ([]*entity.WishlistItem, error) {
	var itemModels []model.WishlistItemModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.WishlistItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items, nil
}

// Update updates an existing wishlist item in the database.
func (r *wishlistRepository) Update(ctx context.Context, item *entity.WishlistItem) error {
	itemModel := model.WishlistItemFromEntity(item)
	result := r.db.WithContext(ctx).Save(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a wishlist item from the database.
func (r *wishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.WishlistItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ReplaceAll atomically replaces the stored set with the given items.
func (r *wishlistRepository) ReplaceAll(ctx context.Context, items []*entity.WishlistItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.WishlistItemModel{}).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Create(model.WishlistItemFromEntity(item)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
