package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finanzas-personales/backend/internal/application/adapter"
)

// ExportOutput represents the exported snapshot document.
type ExportOutput struct {
	Document Document
}

// ExportUseCase serializes the full store into the legacy snapshot layout,
// round-trippable through ImportUseCase and the original app alike.
type ExportUseCase struct {
	goalRepo     adapter.GoalRepository
	paymentRepo  adapter.PaymentRepository
	cardRepo     adapter.CreditCardRepository
	timelessRepo adapter.TimelessPaymentRepository
	wishlistRepo adapter.WishlistRepository
	settingsRepo adapter.SettingsRepository
}

// NewExportUseCase creates a new ExportUseCase instance.
func NewExportUseCase(
	goalRepo adapter.GoalRepository,
	paymentRepo adapter.PaymentRepository,
	cardRepo adapter.CreditCardRepository,
	timelessRepo adapter.TimelessPaymentRepository,
	wishlistRepo adapter.WishlistRepository,
	settingsRepo adapter.SettingsRepository,
) *ExportUseCase {
	return &ExportUseCase{
		goalRepo:     goalRepo,
		paymentRepo:  paymentRepo,
		cardRepo:     cardRepo,
		timelessRepo: timelessRepo,
		wishlistRepo: wishlistRepo,
		settingsRepo: settingsRepo,
	}
}

// Execute builds the snapshot document.
func (uc *ExportUseCase) Execute(ctx context.Context) (*ExportOutput, error) {
	doc := Document{}

	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export goals: %w", err)
	}
	goalRecords := make([]goalRecord, 0, len(goals))
	for _, g := range goals {
		goalRecords = append(goalRecords, goalToRecord(g))
	}
	if doc.Goals, err = json.Marshal(goalRecords); err != nil {
		return nil, fmt.Errorf("failed to encode goals: %w", err)
	}

	payments, err := uc.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export payments: %w", err)
	}
	paymentRecords := make([]paymentRecord, 0, len(payments))
	for _, p := range payments {
		paymentRecords = append(paymentRecords, paymentToRecord(p))
	}
	if doc.Payments, err = json.Marshal(paymentRecords); err != nil {
		return nil, fmt.Errorf("failed to encode payments: %w", err)
	}

	cards, err := uc.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export cards: %w", err)
	}
	cardRecords := make([]cardRecord, 0, len(cards))
	for _, c := range cards {
		cardRecords = append(cardRecords, cardToRecord(c))
	}
	if doc.Cards, err = json.Marshal(cardRecords); err != nil {
		return nil, fmt.Errorf("failed to encode cards: %w", err)
	}

	timeless, err := uc.timelessRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export timeless payments: %w", err)
	}
	timelessRecords := make([]timelessRecord, 0, len(timeless))
	for _, t := range timeless {
		timelessRecords = append(timelessRecords, timelessToRecord(t))
	}
	if doc.Timeless, err = json.Marshal(timelessRecords); err != nil {
		return nil, fmt.Errorf("failed to encode timeless payments: %w", err)
	}

	items, err := uc.wishlistRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export wishlist: %w", err)
	}
	wishlistRecords := make([]wishlistRecord, 0, len(items))
	for _, w := range items {
		wishlistRecords = append(wishlistRecords, wishlistToRecord(w))
	}
	if doc.Wishlist, err = json.Marshal(wishlistRecords); err != nil {
		return nil, fmt.Errorf("failed to encode wishlist: %w", err)
	}

	if doc.Theme, err = uc.settingsRepo.Get(ctx, adapter.SettingTheme); err != nil {
		return nil, fmt.Errorf("failed to export theme: %w", err)
	}

	return &ExportOutput{Document: doc}, nil
}
