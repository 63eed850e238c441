package entity

import (
	"github.com/google/uuid"
)

// CreditCard represents a credit card with a monthly statement cycle.
type CreditCard struct {
	ID                uuid.UUID
	Name              string
	CreditLimit       float64
	CurrentBalance    float64
	CutOffDay         int // Day of the month (1-31) the statement closes
	PaymentDueDateDay int // Day of the month (1-31) the statement is due
	Color             string
	// LastCutOffProcessed is the cycle token ("YYYY-M", zero-based month) of
	// the last monthly cycle a statement payment was generated for. Guards
	// against duplicate generation within the same month.
	LastCutOffProcessed string
}

// NewCreditCard creates a new CreditCard entity.
func NewCreditCard(name string, creditLimit, currentBalance float64, cutOffDay, paymentDueDateDay int, color string) *CreditCard {
	return &CreditCard{
		ID:                uuid.New(),
		Name:              name,
		CreditLimit:       creditLimit,
		CurrentBalance:    currentBalance,
		CutOffDay:         cutOffDay,
		PaymentDueDateDay: paymentDueDateDay,
		Color:             color,
	}
}

// HasBalance reports whether the card carries an outstanding balance.
func (c *CreditCard) HasBalance() bool {
	return c.CurrentBalance > 0
}
