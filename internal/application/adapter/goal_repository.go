// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// GoalRepository defines the interface for savings goal persistence operations.
type GoalRepository interface {
	// Create creates a new savings goal.
	Create(ctx context.Context, goal *entity.SavingsGoal) error

	// FindByID retrieves a savings goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error)

	// FindAll retrieves all savings goals, newest first.
	FindAll(ctx context.Context) ([]*entity.SavingsGoal, error)

	// Update updates an existing savings goal.
	Update(ctx context.Context, goal *entity.SavingsGoal) error

	// SaveBatch upserts a set of goals in one transaction. Used by the
	// contribution engine when completing a goal spawns its successor.
	SaveBatch(ctx context.Context, goals []*entity.SavingsGoal) error

	// Delete removes a savings goal.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll atomically replaces the stored set with the given goals.
	// Used by snapshot import.
	ReplaceAll(ctx context.Context, goals []*entity.SavingsGoal) error

	// Count returns the number of stored goals (palette assignment).
	Count(ctx context.Context) (int64, error)
}
