// Package persistence implements repository interfaces for database operations.
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

// savingsGoalRepository implements the adapter.GoalRepository interface.
type savingsGoalRepository struct {
	db *gorm.DB
}

// NewSavingsGoalRepository creates a new savings goal repository instance.
func NewSavingsGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &savingsGoalRepository{
		db: db,
	}
}

// Create creates a new savings goal in the database.
func (r *savingsGoalRepository) Create(ctx context.Context, goal *entity.SavingsGoal) error {
	goalModel := model.SavingsGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a savings goal by its ID.
func (r *savingsGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error) {
	var goalModel model.SavingsGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindAll retrieves all savings goals, newest first.
func (r *savingsGoalRepository) FindAll(ctx context.Context) ([]*entity.SavingsGoal, error) {
	var goalModels []model.SavingsGoalModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SavingsGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update updates an existing savings goal in the database.
func (r *savingsGoalRepository) Update(ctx context.Context, goal *entity.SavingsGoal) error {
	goalModel := model.SavingsGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SaveBatch upserts a set of goals in one transaction.
func (r *savingsGoalRepository) SaveBatch(ctx context.Context, goals []*entity.SavingsGoal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, goal := range goals {
			if err := tx.Save(model.SavingsGoalFromEntity(goal)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a savings goal from the database.
func (r *savingsGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SavingsGoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ReplaceAll atomically replaces the stored set with the given goals.
func (r *savingsGoalRepository) ReplaceAll(ctx context.Context, goals []*entity.SavingsGoal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.SavingsGoalModel{}).Error; err != nil {
			return err
		}
		for _, goal := range goals {
			if err := tx.Create(model.SavingsGoalFromEntity(goal)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of stored goals.
func (r *savingsGoalRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.SavingsGoalModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
