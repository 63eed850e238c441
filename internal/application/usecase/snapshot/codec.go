// Package snapshot imports and exports the legacy storage layout: five
// JSON record sets plus the theme, as the original local-storage app wrote
// them.
package snapshot

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// dateOnly is the layout for due and target dates in snapshot documents.
const dateOnly = "2006-01-02"

// Document is the top-level snapshot shape. Collections are kept raw so one
// malformed set never poisons the rest.
type Document struct {
	Goals    json.RawMessage `json:"goals_data,omitempty"`
	Payments json.RawMessage `json:"payments_data,omitempty"`
	Cards    json.RawMessage `json:"credit_cards_data,omitempty"`
	Timeless json.RawMessage `json:"timeless_payments_data,omitempty"`
	Wishlist json.RawMessage `json:"wishlist_data,omitempty"`
	Theme    string          `json:"theme,omitempty"`
}

type goalRecord struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	TargetAmount float64           `json:"targetAmount"`
	SavedAmount  float64           `json:"savedAmount"`
	Category     string            `json:"category"`
	Priority     string            `json:"priority"`
	Color        string            `json:"color"`
	Projection   *projectionRecord `json:"projection,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
}

type projectionRecord struct {
	Amount     float64 `json:"amount"`
	Frequency  string  `json:"frequency"`
	TargetDate string  `json:"targetDate,omitempty"`
}

type paymentRecord struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Amount     float64  `json:"amount"`
	PaidAmount *float64 `json:"paidAmount,omitempty"`
	// IsPaid is the pre-partial-payment schema. Migrated on import, never
	// written on export.
	IsPaid       *bool  `json:"isPaid,omitempty"`
	DueDate      string `json:"dueDate"`
	Category     string `json:"category"`
	Frequency    string `json:"frequency"`
	Color        string `json:"color"`
	CreditCardID string `json:"creditCardId,omitempty"`
}

type cardRecord struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	CreditLimit         float64 `json:"creditLimit"`
	CurrentBalance      float64 `json:"currentBalance"`
	CutOffDay           int     `json:"cutOffDay"`
	PaymentDueDateDay   int     `json:"paymentDueDateDay"`
	Color               string  `json:"color"`
	LastCutOffProcessed string  `json:"lastCutOffProcessed,omitempty"`
}

type timelessRecord struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	TotalAmount   float64              `json:"totalAmount"`
	PaidAmount    float64              `json:"paidAmount"`
	IsCompleted   bool                 `json:"isCompleted"`
	Color         string               `json:"color"`
	CreatedAt     string               `json:"createdAt,omitempty"`
	Contributions []contributionRecord `json:"contributions,omitempty"`
}

type contributionRecord struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

type wishlistRecord struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Priority        string   `json:"priority"`
	EstimatedAmount *float64 `json:"estimatedAmount,omitempty"`
	URL             string   `json:"url,omitempty"`
	Distributor     string   `json:"distributor,omitempty"`
}

// idRepairer hands out entity ids, replacing missing, unparsable or
// duplicate ids with fresh ones and counting the repairs.
type idRepairer struct {
	seen     map[uuid.UUID]bool
	Repaired int
}

func newIDRepairer() *idRepairer {
	return &idRepairer{seen: make(map[uuid.UUID]bool)}
}

func (r *idRepairer) repair(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil || r.seen[id] {
		id = uuid.New()
		r.Repaired++
	}
	r.seen[id] = true
	return id
}

// parseDate accepts both full timestamps and bare dates; snapshots written
// by different app versions mix the two.
func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(dateOnly, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func parseDateOr(raw string, fallback time.Time) time.Time {
	if t, ok := parseDate(raw); ok {
		return t
	}
	return fallback
}

func parseFrequency(raw string) entity.Frequency {
	f := entity.Frequency(raw)
	if !f.IsValid() {
		return entity.FrequencyOneTime
	}
	return f
}

func parsePriority(raw string) entity.Priority {
	p := entity.Priority(raw)
	if !p.IsValid() {
		return entity.PriorityMedium
	}
	return p
}

func goalFromRecord(rec goalRecord, ids *idRepairer, now time.Time) *entity.SavingsGoal {
	goal := &entity.SavingsGoal{
		ID:           ids.repair(rec.ID),
		Name:         rec.Name,
		TargetAmount: rec.TargetAmount,
		SavedAmount:  rec.SavedAmount,
		Category:     rec.Category,
		Priority:     parsePriority(rec.Priority),
		Color:        rec.Color,
		CreatedAt:    parseDateOr(rec.CreatedAt, now),
	}
	if rec.Projection != nil {
		proj := &entity.Projection{
			Amount:    rec.Projection.Amount,
			Frequency: parseFrequency(rec.Projection.Frequency),
		}
		if t, ok := parseDate(rec.Projection.TargetDate); ok {
			proj.TargetDate = &t
		}
		goal.Projection = proj
	}
	return goal
}

func paymentFromRecord(rec paymentRecord, ids *idRepairer, now time.Time) *entity.Payment {
	paid := 0.0
	switch {
	case rec.PaidAmount != nil:
		paid = *rec.PaidAmount
	case rec.IsPaid != nil && *rec.IsPaid:
		paid = rec.Amount
	}

	payment := &entity.Payment{
		ID:         ids.repair(rec.ID),
		Name:       rec.Name,
		Amount:     rec.Amount,
		PaidAmount: paid,
		DueDate:    parseDateOr(rec.DueDate, now),
		Category:   rec.Category,
		Frequency:  parseFrequency(rec.Frequency),
		Color:      rec.Color,
	}
	if cardID, err := uuid.Parse(rec.CreditCardID); err == nil {
		payment.CreditCardID = &cardID
	}
	return payment
}

func cardFromRecord(rec cardRecord, ids *idRepairer) *entity.CreditCard {
	return &entity.CreditCard{
		ID:                  ids.repair(rec.ID),
		Name:                rec.Name,
		CreditLimit:         rec.CreditLimit,
		CurrentBalance:      rec.CurrentBalance,
		CutOffDay:           rec.CutOffDay,
		PaymentDueDateDay:   rec.PaymentDueDateDay,
		Color:               rec.Color,
		LastCutOffProcessed: rec.LastCutOffProcessed,
	}
}

func timelessFromRecord(rec timelessRecord, ids *idRepairer, now time.Time) *entity.TimelessPayment {
	payment := &entity.TimelessPayment{
		ID:          ids.repair(rec.ID),
		Name:        rec.Name,
		TotalAmount: rec.TotalAmount,
		PaidAmount:  rec.PaidAmount,
		IsCompleted: rec.IsCompleted,
		Color:       rec.Color,
		CreatedAt:   parseDateOr(rec.CreatedAt, now),
	}
	contributionIDs := newIDRepairer()
	for _, c := range rec.Contributions {
		payment.Contributions = append(payment.Contributions, entity.TimelessContribution{
			ID:     contributionIDs.repair(c.ID),
			Amount: c.Amount,
			Date:   parseDateOr(c.Date, now),
		})
	}
	return payment
}

func wishlistFromRecord(rec wishlistRecord, ids *idRepairer) *entity.WishlistItem {
	return &entity.WishlistItem{
		ID:              ids.repair(rec.ID),
		Name:            rec.Name,
		Category:        rec.Category,
		Priority:        parsePriority(rec.Priority),
		EstimatedAmount: rec.EstimatedAmount,
		URL:             rec.URL,
		Distributor:     rec.Distributor,
	}
}

func goalToRecord(goal *entity.SavingsGoal) goalRecord {
	rec := goalRecord{
		ID:           goal.ID.String(),
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount,
		SavedAmount:  goal.SavedAmount,
		Category:     goal.Category,
		Priority:     string(goal.Priority),
		Color:        goal.Color,
		CreatedAt:    goal.CreatedAt.UTC().Format(time.RFC3339),
	}
	if goal.Projection != nil {
		proj := &projectionRecord{
			Amount:    goal.Projection.Amount,
			Frequency: string(goal.Projection.Frequency),
		}
		if goal.Projection.TargetDate != nil {
			proj.TargetDate = goal.Projection.TargetDate.Format(dateOnly)
		}
		rec.Projection = proj
	}
	return rec
}

func paymentToRecord(payment *entity.Payment) paymentRecord {
	paid := payment.PaidAmount
	rec := paymentRecord{
		ID:         payment.ID.String(),
		Name:       payment.Name,
		Amount:     payment.Amount,
		PaidAmount: &paid,
		DueDate:    payment.DueDate.Format(dateOnly),
		Category:   payment.Category,
		Frequency:  string(payment.Frequency),
		Color:      payment.Color,
	}
	if payment.CreditCardID != nil {
		rec.CreditCardID = payment.CreditCardID.String()
	}
	return rec
}

func cardToRecord(card *entity.CreditCard) cardRecord {
	return cardRecord{
		ID:                  card.ID.String(),
		Name:                card.Name,
		CreditLimit:         card.CreditLimit,
		CurrentBalance:      card.CurrentBalance,
		CutOffDay:           card.CutOffDay,
		PaymentDueDateDay:   card.PaymentDueDateDay,
		Color:               card.Color,
		LastCutOffProcessed: card.LastCutOffProcessed,
	}
}

func timelessToRecord(payment *entity.TimelessPayment) timelessRecord {
	rec := timelessRecord{
		ID:          payment.ID.String(),
		Name:        payment.Name,
		TotalAmount: payment.TotalAmount,
		PaidAmount:  payment.PaidAmount,
		IsCompleted: payment.IsCompleted,
		Color:       payment.Color,
		CreatedAt:   payment.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, c := range payment.Contributions {
		rec.Contributions = append(rec.Contributions, contributionRecord{
			ID:     c.ID.String(),
			Amount: c.Amount,
			Date:   c.Date.UTC().Format(time.RFC3339),
		})
	}
	return rec
}

func wishlistToRecord(item *entity.WishlistItem) wishlistRecord {
	return wishlistRecord{
		ID:              item.ID.String(),
		Name:            item.Name,
		Category:        item.Category,
		Priority:        string(item.Priority),
		EstimatedAmount: item.EstimatedAmount,
		URL:             item.URL,
		Distributor:     item.Distributor,
	}
}
