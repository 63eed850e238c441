package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// TimelessPaymentModel represents the timeless_payments table in the database.
type TimelessPaymentModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name          string                      `gorm:"type:varchar(255);not null"`
	TotalAmount   float64                     `gorm:"type:decimal(15,2);not null"`
	PaidAmount    float64                     `gorm:"type:decimal(15,2);not null;default:0"`
	IsCompleted   bool                        `gorm:"not null;default:false"`
	Color         string                      `gorm:"type:varchar(100)"`
	CreatedAt     time.Time                   `gorm:"not null"`
	UpdatedAt     time.Time                   `gorm:"not null"`
	Contributions []TimelessContributionModel `gorm:"foreignKey:TimelessPaymentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the TimelessPaymentModel.
func (TimelessPaymentModel) TableName() string {
	return "timeless_payments"
}

// TimelessContributionModel represents one row of a timeless payment's
// contribution history.
type TimelessContributionModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	TimelessPaymentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount            float64   `gorm:"type:decimal(15,2);not null"`
	Date              time.Time `gorm:"not null"`
}

// TableName returns the table name for the TimelessContributionModel.
func (TimelessContributionModel) TableName() string {
	return "timeless_contributions"
}

// ToEntity converts a TimelessPaymentModel to a domain TimelessPayment entity.
func (m *TimelessPaymentModel) ToEntity() *entity.TimelessPayment {
	payment := &entity.TimelessPayment{
		ID:          m.ID,
		Name:        m.Name,
		TotalAmount: m.TotalAmount,
		PaidAmount:  m.PaidAmount,
		IsCompleted: m.IsCompleted,
		Color:       m.Color,
		CreatedAt:   m.CreatedAt,
	}
	for _, c := range m.Contributions {
		payment.Contributions = append(payment.Contributions, entity.TimelessContribution{
			ID:     c.ID,
			Amount: c.Amount,
			Date:   c.Date,
		})
	}
	return payment
}

// TimelessPaymentFromEntity creates a TimelessPaymentModel from a domain
// TimelessPayment entity.
func TimelessPaymentFromEntity(payment *entity.TimelessPayment) *TimelessPaymentModel {
	m := &TimelessPaymentModel{
		ID:          payment.ID,
		Name:        payment.Name,
		TotalAmount: payment.TotalAmount,
		PaidAmount:  payment.PaidAmount,
		IsCompleted: payment.IsCompleted,
		Color:       payment.Color,
		CreatedAt:   payment.CreatedAt,
	}
	for _, c := range payment.Contributions {
		m.Contributions = append(m.Contributions, TimelessContributionModel{
			ID:                c.ID,
			TimelessPaymentID: payment.ID,
			Amount:            c.Amount,
			Date:              c.Date,
		})
	}
	return m
}
