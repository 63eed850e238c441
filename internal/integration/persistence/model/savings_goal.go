// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// SavingsGoalModel represents the savings_goals table in the database. The
// optional projection is flattened into nullable columns.
type SavingsGoalModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name                 string     `gorm:"type:varchar(255);not null"`
	TargetAmount         float64    `gorm:"type:decimal(15,2);not null"`
	SavedAmount          float64    `gorm:"type:decimal(15,2);not null;default:0"`
	Category             string     `gorm:"type:varchar(100);not null"`
	Priority             string     `gorm:"type:varchar(20);not null"`
	Color                string     `gorm:"type:varchar(100)"`
	ProjectionAmount     *float64   `gorm:"type:decimal(15,2)"`
	ProjectionFrequency  *string    `gorm:"type:varchar(20)"`
	ProjectionTargetDate *time.Time `gorm:"type:date"`
	CreatedAt            time.Time  `gorm:"not null"`
	UpdatedAt            time.Time  `gorm:"not null"`
}

// TableName returns the table name for the SavingsGoalModel.
func (SavingsGoalModel) TableName() string {
	return "savings_goals"
}

// ToEntity converts a SavingsGoalModel to a domain SavingsGoal entity.
func (m *SavingsGoalModel) ToEntity() *entity.SavingsGoal {
	goal := &entity.SavingsGoal{
		ID:           m.ID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		SavedAmount:  m.SavedAmount,
		Category:     m.Category,
		Priority:     entity.Priority(m.Priority),
		Color:        m.Color,
		CreatedAt:    m.CreatedAt,
	}
	if m.ProjectionAmount != nil && m.ProjectionFrequency != nil {
		goal.Projection = &entity.Projection{
			Amount:     *m.ProjectionAmount,
			Frequency:  entity.Frequency(*m.ProjectionFrequency),
			TargetDate: m.ProjectionTargetDate,
		}
	}
	return goal
}

// SavingsGoalFromEntity creates a SavingsGoalModel from a domain SavingsGoal entity.
func SavingsGoalFromEntity(goal *entity.SavingsGoal) *SavingsGoalModel {
	m := &SavingsGoalModel{
		ID:           goal.ID,
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount,
		SavedAmount:  goal.SavedAmount,
		Category:     goal.Category,
		Priority:     string(goal.Priority),
		Color:        goal.Color,
		CreatedAt:    goal.CreatedAt,
	}
	if goal.Projection != nil {
		amount := goal.Projection.Amount
		frequency := string(goal.Projection.Frequency)
		m.ProjectionAmount = &amount
		m.ProjectionFrequency = &frequency
		m.ProjectionTargetDate = goal.Projection.TargetDate
	}
	return m
}
