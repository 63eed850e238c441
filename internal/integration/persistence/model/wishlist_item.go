package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// WishlistItemModel represents the wishlist_items table in the database.
type WishlistItemModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Category        string    `gorm:"type:varchar(100);not null"`
	Priority        string    `gorm:"type:varchar(20);not null"`
	EstimatedAmount *float64  `gorm:"type:decimal(15,2)"`
	URL             string    `gorm:"type:text"`
	Distributor     string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the WishlistItemModel.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

// ToEntity converts a WishlistItemModel to a domain WishlistItem entity.
func (m *WishlistItemModel) ToEntity() *entity.WishlistItem {
	return &entity.WishlistItem{
		ID:              m.ID,
		Name:            m.Name,
		Category:        m.Category,
		Priority:        entity.Priority(m.Priority),
		EstimatedAmount: m.EstimatedAmount,
		URL:             m.URL,
		Distributor:     m.Distributor,
	}
}

// WishlistItemFromEntity creates a WishlistItemModel from a domain WishlistItem entity.
func WishlistItemFromEntity(item *entity.WishlistItem) *WishlistItemModel {
	return &WishlistItemModel{
		ID:              item.ID,
		Name:            item.Name,
		Category:        item.Category,
		Priority:        string(item.Priority),
		EstimatedAmount: item.EstimatedAmount,
		URL:             item.URL,
		Distributor:     item.Distributor,
	}
}
