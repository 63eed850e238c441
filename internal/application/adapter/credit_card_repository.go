package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// CreditCardRepository defines the interface for credit card persistence operations.
type CreditCardRepository interface {
	// Create creates a new credit card.
	Create(ctx context.Context, card *entity.CreditCard) error

	// FindByID retrieves a credit card by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error)

	// FindAll retrieves all credit cards.
	FindAll(ctx context.Context) ([]*entity.CreditCard, error)

	// Update updates an existing credit card.
	Update(ctx context.Context, card *entity.CreditCard) error

	// SaveBatch upserts a set of cards in one transaction. Used by the
	// cut-off cycle engine to mark processed cycles in one batch.
	SaveBatch(ctx context.Context, cards []*entity.CreditCard) error

	// Delete removes a credit card.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll atomically replaces the stored set with the given cards.
	// Used by snapshot import.
	ReplaceAll(ctx context.Context, cards []*entity.CreditCard) error

	// Count returns the number of stored cards (palette assignment).
	Count(ctx context.Context) (int64, error)
}
