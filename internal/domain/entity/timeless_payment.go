package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimelessContribution is one immutable entry in a timeless payment's
// contribution history.
type TimelessContribution struct {
	ID     uuid.UUID
	Amount float64
	Date   time.Time
}

// TimelessPayment represents an open-ended debt or loan paid off over time
// with no due date and no recurrence.
type TimelessPayment struct {
	ID            uuid.UUID
	Name          string
	TotalAmount   float64
	PaidAmount    float64 // Clamped to TotalAmount
	IsCompleted   bool    // Sticky: once completed it stays completed
	Color         string
	CreatedAt     time.Time
	Contributions []TimelessContribution // Append-only, ordered by date
}

// NewTimelessPayment creates a new TimelessPayment entity with an empty
// contribution history.
func NewTimelessPayment(name string, totalAmount float64, color string) *TimelessPayment {
	return &TimelessPayment{
		ID:          uuid.New(),
		Name:        name,
		TotalAmount: totalAmount,
		PaidAmount:  0,
		IsCompleted: false,
		Color:       color,
		CreatedAt:   time.Now().UTC(),
	}
}
