package dto

import (
	"github.com/finanzas-personales/backend/internal/application/usecase/creditcard"
	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// CreateCreditCardRequest represents the request body for card creation.
type CreateCreditCardRequest struct {
	Name              string  `json:"name" binding:"required"`
	CreditLimit       float64 `json:"credit_limit" binding:"gte=0"`
	CurrentBalance    float64 `json:"current_balance" binding:"gte=0"`
	CutOffDay         int     `json:"cut_off_day" binding:"required,min=1,max=31"`
	PaymentDueDateDay int     `json:"payment_due_date_day" binding:"required,min=1,max=31"`
}

// UpdateCreditCardRequest represents the request body for card update.
type UpdateCreditCardRequest struct {
	Name              *string  `json:"name,omitempty"`
	CreditLimit       *float64 `json:"credit_limit,omitempty" binding:"omitempty,gte=0"`
	CutOffDay         *int     `json:"cut_off_day,omitempty" binding:"omitempty,min=1,max=31"`
	PaymentDueDateDay *int     `json:"payment_due_date_day,omitempty" binding:"omitempty,min=1,max=31"`
}

// UpdateBalanceRequest represents the request body for a direct balance update.
type UpdateBalanceRequest struct {
	CurrentBalance float64 `json:"current_balance" binding:"gte=0"`
}

// CreditCardResponse represents a single credit card in API responses.
type CreditCardResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	CreditLimit         float64 `json:"credit_limit"`
	CurrentBalance      float64 `json:"current_balance"`
	CutOffDay           int     `json:"cut_off_day"`
	PaymentDueDateDay   int     `json:"payment_due_date_day"`
	Color               string  `json:"color"`
	LastCutOffProcessed string  `json:"last_cut_off_processed,omitempty"`
}

// CreditCardListResponse represents the response for listing cards.
type CreditCardListResponse struct {
	Cards []CreditCardResponse `json:"cards"`
}

// CutOffCycleResponse represents the result of a cut-off cycle run.
type CutOffCycleResponse struct {
	GeneratedPayments []PaymentResponse    `json:"generated_payments"`
	ProcessedCards    []CreditCardResponse `json:"processed_cards"`
}

// ToCreditCardResponse converts a domain CreditCard entity to a
// CreditCardResponse DTO.
func ToCreditCardResponse(c *entity.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:                  c.ID.String(),
		Name:                c.Name,
		CreditLimit:         c.CreditLimit,
		CurrentBalance:      c.CurrentBalance,
		CutOffDay:           c.CutOffDay,
		PaymentDueDateDay:   c.PaymentDueDateDay,
		Color:               c.Color,
		LastCutOffProcessed: c.LastCutOffProcessed,
	}
}

// ToCreditCardListResponse converts a list of cards to CreditCardListResponse.
func ToCreditCardListResponse(cards []*entity.CreditCard) CreditCardListResponse {
	responses := make([]CreditCardResponse, len(cards))
	for i, c := range cards {
		responses[i] = ToCreditCardResponse(c)
	}
	return CreditCardListResponse{
		Cards: responses,
	}
}

// ToCutOffCycleResponse converts a cycle run output to its DTO.
func ToCutOffCycleResponse(output *creditcard.RunCutOffCycleOutput) CutOffCycleResponse {
	response := CutOffCycleResponse{
		GeneratedPayments: make([]PaymentResponse, len(output.GeneratedPayments)),
		ProcessedCards:    make([]CreditCardResponse, len(output.ProcessedCards)),
	}
	for i, p := range output.GeneratedPayments {
		response.GeneratedPayments[i] = ToPaymentResponse(p)
	}
	for i, c := range output.ProcessedCards {
		response.ProcessedCards[i] = ToCreditCardResponse(c)
	}
	return response
}
