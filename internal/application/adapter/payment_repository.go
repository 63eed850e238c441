package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// PaymentRepository defines the interface for payment persistence operations.
type PaymentRepository interface {
	// Create creates a new payment.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByID retrieves a payment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindAll retrieves all payments.
	FindAll(ctx context.Context) ([]*entity.Payment, error)

	// Update updates an existing payment.
	Update(ctx context.Context, payment *entity.Payment) error

	// SaveBatch upserts a set of payments in one transaction. Used when a
	// settled recurring payment spawns its successor and by the cut-off
	// cycle engine's batch append.
	SaveBatch(ctx context.Context, payments []*entity.Payment) error

	// Delete removes a payment.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll atomically replaces the stored set with the given payments.
	// Used by snapshot import.
	ReplaceAll(ctx context.Context, payments []*entity.Payment) error

	// Count returns the number of stored payments (palette assignment).
	Count(ctx context.Context) (int64, error)
}
