package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// ImportInput represents the input for snapshot import.
type ImportInput struct {
	Document Document
}

// ImportOutput reports what the import did. Skipped lists the collections
// that could not be decoded and were left untouched.
type ImportOutput struct {
	Goals       int
	Payments    int
	Cards       int
	Timeless    int
	Wishlist    int
	RepairedIDs int
	Skipped     []string
}

// ImportUseCase loads a legacy snapshot document into the store. Each
// collection decodes independently: a malformed one is logged and skipped
// while the rest import normally. Payment records still carrying the legacy
// isPaid flag are migrated, and missing or duplicate ids are reassigned.
type ImportUseCase struct {
	goalRepo     adapter.GoalRepository
	paymentRepo  adapter.PaymentRepository
	cardRepo     adapter.CreditCardRepository
	timelessRepo adapter.TimelessPaymentRepository
	wishlistRepo adapter.WishlistRepository
	settingsRepo adapter.SettingsRepository
	clock        adapter.Clock
	logger       *slog.Logger
}

// NewImportUseCase creates a new ImportUseCase instance.
func NewImportUseCase(
	goalRepo adapter.GoalRepository,
	paymentRepo adapter.PaymentRepository,
	cardRepo adapter.CreditCardRepository,
	timelessRepo adapter.TimelessPaymentRepository,
	wishlistRepo adapter.WishlistRepository,
	settingsRepo adapter.SettingsRepository,
	clock adapter.Clock,
	logger *slog.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		goalRepo:     goalRepo,
		paymentRepo:  paymentRepo,
		cardRepo:     cardRepo,
		timelessRepo: timelessRepo,
		wishlistRepo: wishlistRepo,
		settingsRepo: settingsRepo,
		clock:        clock,
		logger:       logger,
	}
}

// Execute performs the import.
func (uc *ImportUseCase) Execute(ctx context.Context, input ImportInput) (*ImportOutput, error) {
	now := uc.clock.Now().UTC()
	out := &ImportOutput{}
	ids := newIDRepairer()

	if goals, ok := decodeCollection[goalRecord](uc, "goals_data", input.Document.Goals, out); ok {
		entities := make([]*entity.SavingsGoal, 0, len(goals))
		for _, rec := range goals {
			entities = append(entities, goalFromRecord(rec, ids, now))
		}
		if err := uc.goalRepo.ReplaceAll(ctx, entities); err != nil {
			return nil, fmt.Errorf("failed to import goals: %w", err)
		}
		out.Goals = len(entities)
	}

	if payments, ok := decodeCollection[paymentRecord](uc, "payments_data", input.Document.Payments, out); ok {
		entities := make([]*entity.Payment, 0, len(payments))
		for _, rec := range payments {
			entities = append(entities, paymentFromRecord(rec, ids, now))
		}
		if err := uc.paymentRepo.ReplaceAll(ctx, entities); err != nil {
			return nil, fmt.Errorf("failed to import payments: %w", err)
		}
		out.Payments = len(entities)
	}

	if cards, ok := decodeCollection[cardRecord](uc, "credit_cards_data", input.Document.Cards, out); ok {
		entities := make([]*entity.CreditCard, 0, len(cards))
		for _, rec := range cards {
			entities = append(entities, cardFromRecord(rec, ids))
		}
		if err := uc.cardRepo.ReplaceAll(ctx, entities); err != nil {
			return nil, fmt.Errorf("failed to import cards: %w", err)
		}
		out.Cards = len(entities)
	}

	if timeless, ok := decodeCollection[timelessRecord](uc, "timeless_payments_data", input.Document.Timeless, out); ok {
		entities := make([]*entity.TimelessPayment, 0, len(timeless))
		for _, rec := range timeless {
			entities = append(entities, timelessFromRecord(rec, ids, now))
		}
		if err := uc.timelessRepo.ReplaceAll(ctx, entities); err != nil {
			return nil, fmt.Errorf("failed to import timeless payments: %w", err)
		}
		out.Timeless = len(entities)
	}

	if items, ok := decodeCollection[wishlistRecord](uc, "wishlist_data", input.Document.Wishlist, out); ok {
		entities := make([]*entity.WishlistItem, 0, len(items))
		for _, rec := range items {
			entities = append(entities, wishlistFromRecord(rec, ids))
		}
		if err := uc.wishlistRepo.ReplaceAll(ctx, entities); err != nil {
			return nil, fmt.Errorf("failed to import wishlist: %w", err)
		}
		out.Wishlist = len(entities)
	}

	if input.Document.Theme != "" {
		if err := uc.settingsRepo.Set(ctx, adapter.SettingTheme, input.Document.Theme); err != nil {
			return nil, fmt.Errorf("failed to import theme: %w", err)
		}
	}

	out.RepairedIDs = ids.Repaired
	if out.RepairedIDs > 0 {
		uc.logger.Warn("snapshot import repaired entity ids", "count", out.RepairedIDs)
	}
	return out, nil
}

// decodeCollection unmarshals one record set. Absent collections and
// malformed ones both return ok=false; only the malformed case is recorded
// as skipped.
func decodeCollection[T any](uc *ImportUseCase, key string, raw json.RawMessage, out *ImportOutput) ([]T, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		uc.logger.Warn("skipping malformed snapshot collection", "collection", key, "error", err)
		out.Skipped = append(out.Skipped, key)
		return nil, false
	}
	return records, true
}
