package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// TimelessPaymentRepository defines the interface for timeless payment
// persistence operations. Contribution history is stored with its parent.
type TimelessPaymentRepository interface {
	// Create creates a new timeless payment.
	Create(ctx context.Context, payment *entity.TimelessPayment) error

	// FindByID retrieves a timeless payment, including its contributions.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TimelessPayment, error)

	// FindAll retrieves all timeless payments with their contributions.
	FindAll(ctx context.Context) ([]*entity.TimelessPayment, error)

	// Update updates a timeless payment and appends any new contributions.
	Update(ctx context.Context, payment *entity.TimelessPayment) error

	// Delete removes a timeless payment and its contribution history.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll atomically replaces the stored set with the given payments.
	// Used by snapshot import.
	ReplaceAll(ctx context.Context, payments []*entity.TimelessPayment) error

	// Count returns the number of stored timeless payments (palette assignment).
	Count(ctx context.Context) (int64, error)
}
