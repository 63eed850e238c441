package snapshot

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

type memoryStore struct {
	goals    []*entity.SavingsGoal
	payments []*entity.Payment
	cards    []*entity.CreditCard
	timeless []*entity.TimelessPayment
	wishlist []*entity.WishlistItem
	settings map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{settings: make(map[string]string)}
}

type goalStore struct{ s *memoryStore }

func (r goalStore) Create(_ context.Context, g *entity.SavingsGoal) error {
	r.s.goals = append(r.s.goals, g)
	return nil
}
func (r goalStore) FindByID(_ context.Context, _ uuid.UUID) (*entity.SavingsGoal, error) {
	return nil, nil
}
func (r goalStore) FindAll(_ context.Context) ([]*entity.SavingsGoal, error) { return r.s.goals, nil }
func (r goalStore) Update(_ context.Context, _ *entity.SavingsGoal) error    { return nil }
func (r goalStore) SaveBatch(_ context.Context, _ []*entity.SavingsGoal) error {
	return nil
}
func (r goalStore) Delete(_ context.Context, _ uuid.UUID) error { return nil }
func (r goalStore) ReplaceAll(_ context.Context, goals []*entity.SavingsGoal) error {
	r.s.goals = goals
	return nil
}
func (r goalStore) Count(_ context.Context) (int64, error) { return int64(len(r.s.goals)), nil }

type paymentStore struct{ s *memoryStore }

func (r paymentStore) Create(_ context.Context, p *entity.Payment) error {
	r.s.payments = append(r.s.payments, p)
	return nil
}
func (r paymentStore) FindByID(_ context.Context, _ uuid.UUID) (*entity.Payment, error) {
	return nil, nil
}
func (r paymentStore) FindAll(_ context.Context) ([]*entity.Payment, error) {
	return r.s.payments, nil
}
func (r paymentStore) Update(_ context.Context, _ *entity.Payment) error      { return nil }
func (r paymentStore) SaveBatch(_ context.Context, _ []*entity.Payment) error { return nil }
func (r paymentStore) Delete(_ context.Context, _ uuid.UUID) error            { return nil }
func (r paymentStore) ReplaceAll(_ context.Context, payments []*entity.Payment) error {
	r.s.payments = payments
	return nil
}
func (r paymentStore) Count(_ context.Context) (int64, error) { return int64(len(r.s.payments)), nil }

type cardStore struct{ s *memoryStore }

func (r cardStore) Create(_ context.Context, c *entity.CreditCard) error {
	r.s.cards = append(r.s.cards, c)
	return nil
}
func (r cardStore) FindByID(_ context.Context, _ uuid.UUID) (*entity.CreditCard, error) {
	return nil, nil
}
func (r cardStore) FindAll(_ context.Context) ([]*entity.CreditCard, error) { return r.s.cards, nil }
func (r cardStore) Update(_ context.Context, _ *entity.CreditCard) error    { return nil }
func (r cardStore) SaveBatch(_ context.Context, _ []*entity.CreditCard) error {
	return nil
}
func (r cardStore) Delete(_ context.Context, _ uuid.UUID) error { return nil }
func (r cardStore) ReplaceAll(_ context.Context, cards []*entity.CreditCard) error {
	r.s.cards = cards
	return nil
}
func (r cardStore) Count(_ context.Context) (int64, error) { return int64(len(r.s.cards)), nil }

type timelessStore struct{ s *memoryStore }

func (r timelessStore) Create(_ context.Context, p *entity.TimelessPayment) error {
	r.s.timeless = append(r.s.timeless, p)
	return nil
}
func (r timelessStore) FindByID(_ context.Context, _ uuid.UUID) (*entity.TimelessPayment, error) {
	return nil, nil
}
func (r timelessStore) FindAll(_ context.Context) ([]*entity.TimelessPayment, error) {
	return r.s.timeless, nil
}
func (r timelessStore) Update(_ context.Context, _ *entity.TimelessPayment) error { return nil }
func (r timelessStore) Delete(_ context.Context, _ uuid.UUID) error               { return nil }
func (r timelessStore) ReplaceAll(_ context.Context, payments []*entity.TimelessPayment) error {
	r.s.timeless = payments
	return nil
}
func (r timelessStore) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.timeless)), nil
}

type wishlistStore struct{ s *memoryStore }

func (r wishlistStore) Create(_ context.Context, i *entity.WishlistItem) error {
	r.s.wishlist = append(r.s.wishlist, i)
	return nil
}
func (r wishlistStore) FindByID(_ context.Context, _ uuid.UUID) (*entity.WishlistItem, error) {
	return nil, nil
}
func (r wishlistStore) FindAll(_ context.Context) ([]*entity.WishlistItem, error) {
	return r.s.wishlist, nil
}
func (r wishlistStore) Update(_ context.Context, _ *entity.WishlistItem) error { return nil }
func (r wishlistStore) Delete(_ context.Context, _ uuid.UUID) error            { return nil }
func (r wishlistStore) ReplaceAll(_ context.Context, items []*entity.WishlistItem) error {
	r.s.wishlist = items
	return nil
}

type settingsStore struct{ s *memoryStore }

func (r settingsStore) Get(_ context.Context, key string) (string, error) {
	return r.s.settings[key], nil
}
func (r settingsStore) Set(_ context.Context, key, value string) error {
	r.s.settings[key] = value
	return nil
}
func (r settingsStore) Delete(_ context.Context, key string) error {
	delete(r.s.settings, key)
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newImportUseCase(s *memoryStore, now time.Time) *ImportUseCase {
	return NewImportUseCase(
		goalStore{s}, paymentStore{s}, cardStore{s}, timelessStore{s}, wishlistStore{s}, settingsStore{s},
		fixedClock{now},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func newExportUseCase(s *memoryStore) *ExportUseCase {
	return NewExportUseCase(goalStore{s}, paymentStore{s}, cardStore{s}, timelessStore{s}, wishlistStore{s}, settingsStore{s})
}

func TestImportSnapshot(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	t.Run("replaces existing collections", func(t *testing.T) {
		store := newMemoryStore()
		store.goals = []*entity.SavingsGoal{entity.NewSavingsGoal("Vieja", 100, "General", entity.PriorityLow, "rose")}
		uc := newImportUseCase(store, now)

		out, err := uc.Execute(ctx, ImportInput{Document: Document{
			Goals: json.RawMessage(`[{"id":"0d4a9bd4-4f5a-4c0b-9a5f-3f1f2a6f7a01","name":"Nueva","targetAmount":5000,"savedAmount":1000,"category":"General","priority":"Media","color":"sky"}]`),
			Theme: "dark",
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Goals != 1 {
			t.Errorf("expected 1 imported goal, got %d", out.Goals)
		}
		if len(store.goals) != 1 || store.goals[0].Name != "Nueva" {
			t.Errorf("store must hold only the imported goal, got %v", store.goals)
		}
		if store.settings["theme"] != "dark" {
			t.Errorf("theme not imported: %v", store.settings)
		}
		if out.RepairedIDs != 0 {
			t.Errorf("valid ids must not be repaired, got %d", out.RepairedIDs)
		}
	})

	t.Run("migrates the legacy isPaid flag", func(t *testing.T) {
		store := newMemoryStore()
		uc := newImportUseCase(store, now)

		_, err := uc.Execute(ctx, ImportInput{Document: Document{
			Payments: json.RawMessage(`[
				{"id":"0d4a9bd4-4f5a-4c0b-9a5f-3f1f2a6f7a02","name":"Saldada","amount":800,"isPaid":true,"dueDate":"2026-08-01","category":"Hogar","frequency":"Una vez","color":"teal"},
				{"id":"0d4a9bd4-4f5a-4c0b-9a5f-3f1f2a6f7a03","name":"Pendiente","amount":900,"isPaid":false,"dueDate":"2026-08-15","category":"Hogar","frequency":"Una vez","color":"cyan"}
			]`),
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.payments[0].PaidAmount != 800 {
			t.Errorf("isPaid true must migrate to a fully paid amount, got %v", store.payments[0].PaidAmount)
		}
		if store.payments[1].PaidAmount != 0 {
			t.Errorf("isPaid false must migrate to zero paid, got %v", store.payments[1].PaidAmount)
		}
	})

	t.Run("repairs missing and duplicate ids", func(t *testing.T) {
		store := newMemoryStore()
		uc := newImportUseCase(store, now)

		out, err := uc.Execute(ctx, ImportInput{Document: Document{
			Goals: json.RawMessage(`[
				{"id":"","name":"Sin id","targetAmount":1000,"savedAmount":0,"category":"General","priority":"Baja","color":"rose"},
				{"id":"0d4a9bd4-4f5a-4c0b-9a5f-3f1f2a6f7a01","name":"Uno","targetAmount":1000,"savedAmount":0,"category":"General","priority":"Baja","color":"sky"},
				{"id":"0d4a9bd4-4f5a-4c0b-9a5f-3f1f2a6f7a01","name":"Duplicado","targetAmount":1000,"savedAmount":0,"category":"General","priority":"Baja","color":"amber"}
			]`),
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.RepairedIDs != 2 {
			t.Errorf("expected 2 repaired ids, got %d", out.RepairedIDs)
		}
		seen := make(map[uuid.UUID]bool)
		for _, g := range store.goals {
			if seen[g.ID] {
				t.Fatal("imported goals must have unique ids")
			}
			seen[g.ID] = true
		}
	})

	t.Run("a malformed collection is skipped, not fatal", func(t *testing.T) {
		store := newMemoryStore()
		uc := newImportUseCase(store, now)

		out, err := uc.Execute(ctx, ImportInput{Document: Document{
			Goals:    json.RawMessage(`{"not":"an array"}`),
			Payments: json.RawMessage(`[{"id":"0d4a9bd4-4f5a-4c0b-9a5f-3f1f2a6f7a02","name":"Renta","amount":8500,"paidAmount":0,"dueDate":"2026-09-01","category":"Hogar","frequency":"Mensual","color":"teal"}]`),
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Skipped) != 1 || out.Skipped[0] != "goals_data" {
			t.Errorf("expected goals_data skipped, got %v", out.Skipped)
		}
		if out.Payments != 1 {
			t.Errorf("healthy collections must still import, got %d payments", out.Payments)
		}
	})

	t.Run("unknown frequency and priority fall back to defaults", func(t *testing.T) {
		store := newMemoryStore()
		uc := newImportUseCase(store, now)

		_, err := uc.Execute(ctx, ImportInput{Document: Document{
			Payments: json.RawMessage(`[{"id":"0d4a9bd4-4f5a-4c0b-9a5f-3f1f2a6f7a02","name":"Rara","amount":100,"paidAmount":0,"dueDate":"2026-09-01","category":"Otros","frequency":"Cada eclipse","color":"teal"}]`),
			Goals:    json.RawMessage(`[{"id":"0d4a9bd4-4f5a-4c0b-9a5f-3f1f2a6f7a01","name":"Rara","targetAmount":100,"savedAmount":0,"category":"Otros","priority":"Urgente","color":"sky"}]`),
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.payments[0].Frequency != entity.FrequencyOneTime {
			t.Errorf("unknown frequency must fall back to one-time, got %q", store.payments[0].Frequency)
		}
		if store.goals[0].Priority != entity.PriorityMedium {
			t.Errorf("unknown priority must fall back to medium, got %q", store.goals[0].Priority)
		}
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	source := newMemoryStore()
	goal := entity.NewSavingsGoal("Vacaciones", 15000, "Viajes", entity.PriorityHigh, "rose")
	goal.SavedAmount = 2500
	targetDate := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
	goal.Projection = &entity.Projection{Amount: 1000, Frequency: entity.FrequencyMonthly, TargetDate: &targetDate}
	source.goals = []*entity.SavingsGoal{goal}

	card := entity.NewCreditCard("BBVA Azul", 50000, 3000, 15, 5, "purple")
	card.LastCutOffProcessed = "2026-7"
	source.cards = []*entity.CreditCard{card}

	statement := entity.NewPayment("Pago Tarjeta BBVA Azul", 3000, time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC), entity.StatementCategory, entity.FrequencyMonthly, "teal")
	statement.CreditCardID = &card.ID
	statement.PaidAmount = 1000
	source.payments = []*entity.Payment{statement}

	source.settings["theme"] = "dark"

	exported, err := newExportUseCase(source).Execute(ctx)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	target := newMemoryStore()
	out, err := newImportUseCase(target, now).Execute(ctx, ImportInput{Document: exported.Document})
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if out.RepairedIDs != 0 {
		t.Errorf("round trip must not repair ids, got %d", out.RepairedIDs)
	}
	if len(out.Skipped) != 0 {
		t.Errorf("round trip must not skip collections, got %v", out.Skipped)
	}

	if len(target.goals) != 1 {
		t.Fatalf("expected one goal, got %d", len(target.goals))
	}
	got := target.goals[0]
	if got.ID != goal.ID || got.SavedAmount != 2500 || got.Priority != entity.PriorityHigh {
		t.Errorf("goal did not round trip: %+v", got)
	}
	if got.Projection == nil || got.Projection.Frequency != entity.FrequencyMonthly || got.Projection.TargetDate == nil || !got.Projection.TargetDate.Equal(targetDate) {
		t.Errorf("projection did not round trip: %+v", got.Projection)
	}

	if len(target.payments) != 1 {
		t.Fatalf("expected one payment, got %d", len(target.payments))
	}
	p := target.payments[0]
	if p.PaidAmount != 1000 || p.CreditCardID == nil || *p.CreditCardID != card.ID {
		t.Errorf("payment did not round trip: %+v", p)
	}

	if len(target.cards) != 1 || target.cards[0].LastCutOffProcessed != "2026-7" {
		t.Errorf("card cycle token did not round trip: %+v", target.cards)
	}
	if target.settings["theme"] != "dark" {
		t.Errorf("theme did not round trip: %v", target.settings)
	}
}
