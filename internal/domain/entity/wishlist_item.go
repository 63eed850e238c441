package entity

import (
	"github.com/google/uuid"
)

// WishlistItem represents a wished-for purchase that may later be promoted
// into a savings goal.
type WishlistItem struct {
	ID              uuid.UUID
	Name            string
	Category        string
	Priority        Priority
	EstimatedAmount *float64
	URL             string
	Distributor     string
}

// NewWishlistItem creates a new WishlistItem entity.
func NewWishlistItem(name, category string, priority Priority, estimatedAmount *float64, url, distributor string) *WishlistItem {
	return &WishlistItem{
		ID:              uuid.New(),
		Name:            name,
		Category:        category,
		Priority:        priority,
		EstimatedAmount: estimatedAmount,
		URL:             url,
		Distributor:     distributor,
	}
}

// ToGoal converts the wishlist item into a fresh savings goal, copying
// name, category, priority and estimated amount. The item itself is removed
// from the wishlist by the promoting use case.
func (w *WishlistItem) ToGoal(color string) *SavingsGoal {
	target := 0.0
	if w.EstimatedAmount != nil {
		target = *w.EstimatedAmount
	}
	return NewSavingsGoal(w.Name, target, w.Category, w.Priority, color)
}
