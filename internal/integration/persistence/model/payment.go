package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Amount       float64    `gorm:"type:decimal(15,2);not null"`
	PaidAmount   float64    `gorm:"type:decimal(15,2);not null;default:0"`
	DueDate      time.Time  `gorm:"type:date;not null;index"`
	Category     string     `gorm:"type:varchar(100);not null"`
	Frequency    string     `gorm:"type:varchar(20);not null"`
	Color        string     `gorm:"type:varchar(100)"`
	CreditCardID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:           m.ID,
		Name:         m.Name,
		Amount:       m.Amount,
		PaidAmount:   m.PaidAmount,
		DueDate:      m.DueDate,
		Category:     m.Category,
		Frequency:    entity.Frequency(m.Frequency),
		Color:        m.Color,
		CreditCardID: m.CreditCardID,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:           payment.ID,
		Name:         payment.Name,
		Amount:       payment.Amount,
		PaidAmount:   payment.PaidAmount,
		DueDate:      payment.DueDate,
		Category:     payment.Category,
		Frequency:    string(payment.Frequency),
		Color:        payment.Color,
		CreditCardID: payment.CreditCardID,
	}
}
