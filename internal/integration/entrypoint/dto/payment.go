package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/usecase/payment"
	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// virtualCardPrefix marks a contribution target that is a card balance
// rather than a payment record. The dashboard emits ids in this form for
// virtual obligations and contributions route back through it.
const virtualCardPrefix = "card-"

// CreatePaymentRequest represents the request body for payment creation.
type CreatePaymentRequest struct {
	Name      string  `json:"name" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	DueDate   string  `json:"due_date" binding:"required"`
	Category  string  `json:"category"`
	Frequency string  `json:"frequency" binding:"required"`
}

// UpdatePaymentRequest represents the request body for payment update.
type UpdatePaymentRequest struct {
	Name      *string  `json:"name,omitempty"`
	Amount    *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	DueDate   *string  `json:"due_date,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Frequency *string  `json:"frequency,omitempty"`
}

// ContributePaymentRequest represents the request body for a payment
// contribution. TargetID is either a payment id or "card-<id>" for a virtual
// obligation.
type ContributePaymentRequest struct {
	TargetID string  `json:"target_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

// PaymentResponse represents a single payment in API responses.
type PaymentResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	PaidAmount   float64 `json:"paid_amount"`
	Remaining    float64 `json:"remaining"`
	DueDate      string  `json:"due_date"`
	Category     string  `json:"category"`
	Frequency    string  `json:"frequency"`
	Color        string  `json:"color"`
	CreditCardID *string `json:"credit_card_id,omitempty"`
}

// PaymentListResponse represents the response for listing payments.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ContributePaymentResponse represents the response for a payment
// contribution.
type ContributePaymentResponse struct {
	Payment        *PaymentResponse    `json:"payment,omitempty"`
	SpawnedPayment *PaymentResponse    `json:"spawned_payment,omitempty"`
	Card           *CreditCardResponse `json:"card,omitempty"`
	Completed      bool                `json:"completed"`
}

// ParseContributionTarget resolves a wire target id into a typed
// contribution target.
func ParseContributionTarget(raw string) (payment.ContributionTarget, error) {
	if cardID, ok := strings.CutPrefix(raw, virtualCardPrefix); ok {
		id, err := uuid.Parse(cardID)
		if err != nil {
			return payment.ContributionTarget{}, fmt.Errorf("invalid card id in target: %w", err)
		}
		return payment.ContributionTarget{Kind: payment.TargetCard, ID: id}, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return payment.ContributionTarget{}, fmt.Errorf("invalid payment id in target: %w", err)
	}
	return payment.ContributionTarget{Kind: payment.TargetPayment, ID: id}, nil
}

// ToPaymentResponse converts a domain Payment entity to a PaymentResponse DTO.
func ToPaymentResponse(p *entity.Payment) PaymentResponse {
	response := PaymentResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		Amount:     p.Amount,
		PaidAmount: p.PaidAmount,
		Remaining:  p.Remaining(),
		DueDate:    p.DueDate.Format(dateLayout),
		Category:   p.Category,
		Frequency:  string(p.Frequency),
		Color:      p.Color,
	}
	if p.CreditCardID != nil {
		cardID := p.CreditCardID.String()
		response.CreditCardID = &cardID
	}
	return response
}

// ToPaymentListResponse converts a list of payments to PaymentListResponse.
func ToPaymentListResponse(payments []*entity.Payment) PaymentListResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(p)
	}
	return PaymentListResponse{
		Payments: responses,
	}
}

// ToContributePaymentResponse converts a contribution output to its DTO.
func ToContributePaymentResponse(output *payment.ContributeToPaymentOutput) ContributePaymentResponse {
	response := ContributePaymentResponse{
		Completed: output.Completed,
	}
	if output.Payment != nil {
		p := ToPaymentResponse(output.Payment)
		response.Payment = &p
	}
	if output.SpawnedPayment != nil {
		p := ToPaymentResponse(output.SpawnedPayment)
		response.SpawnedPayment = &p
	}
	if output.Card != nil {
		c := ToCreditCardResponse(output.Card)
		response.Card = &c
	}
	return response
}
