package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// CreditCardModel represents the credit_cards table in the database.
type CreditCardModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string    `gorm:"type:varchar(255);not null"`
	CreditLimit         float64   `gorm:"type:decimal(15,2);not null"`
	CurrentBalance      float64   `gorm:"type:decimal(15,2);not null;default:0"`
	CutOffDay           int       `gorm:"not null"`
	PaymentDueDateDay   int       `gorm:"not null"`
	Color               string    `gorm:"type:varchar(100)"`
	LastCutOffProcessed string    `gorm:"type:varchar(10)"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName returns the table name for the CreditCardModel.
func (CreditCardModel) TableName() string {
	return "credit_cards"
}

// ToEntity converts a CreditCardModel to a domain CreditCard entity.
func (m *CreditCardModel) ToEntity() *entity.CreditCard {
	return &entity.CreditCard{
		ID:                  m.ID,
		Name:                m.Name,
		CreditLimit:         m.CreditLimit,
		CurrentBalance:      m.CurrentBalance,
		CutOffDay:           m.CutOffDay,
		PaymentDueDateDay:   m.PaymentDueDateDay,
		Color:               m.Color,
		LastCutOffProcessed: m.LastCutOffProcessed,
	}
}

// CreditCardFromEntity creates a CreditCardModel from a domain CreditCard entity.
func CreditCardFromEntity(card *entity.CreditCard) *CreditCardModel {
	return &CreditCardModel{
		ID:                  card.ID,
		Name:                card.Name,
		CreditLimit:         card.CreditLimit,
		CurrentBalance:      card.CurrentBalance,
		CutOffDay:           card.CutOffDay,
		PaymentDueDateDay:   card.PaymentDueDateDay,
		Color:               card.Color,
		LastCutOffProcessed: card.LastCutOffProcessed,
	}
}
