package entity

import (
	"time"

	"github.com/google/uuid"
)

// StatementCategory is the fixed category assigned to payments generated by
// the credit card cut-off cycle.
const StatementCategory = "Tarjeta de Crédito"

// Payment represents a single occurrence of a scheduled payment.
type Payment struct {
	ID           uuid.UUID
	Name         string
	Amount       float64 // Total owed for this occurrence
	PaidAmount   float64 // 0 <= PaidAmount <= Amount
	DueDate      time.Time
	Category     string
	Frequency    Frequency
	Color        string
	CreditCardID *uuid.UUID // Links a statement payment back to its card
}

// NewPayment creates a new Payment entity with nothing paid yet.
func NewPayment(name string, amount float64, dueDate time.Time, category string, frequency Frequency, color string) *Payment {
	return &Payment{
		ID:         uuid.New(),
		Name:       name,
		Amount:     amount,
		PaidAmount: 0,
		DueDate:    dueDate,
		Category:   category,
		Frequency:  frequency,
		Color:      color,
	}
}

// Remaining returns the unpaid balance of the payment, floored at zero.
func (p *Payment) Remaining() float64 {
	if r := p.Amount - p.PaidAmount; r > 0 {
		return r
	}
	return 0
}
