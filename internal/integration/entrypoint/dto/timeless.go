package dto

import (
	"time"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// CreateTimelessRequest represents the request body for timeless payment
// creation.
type CreateTimelessRequest struct {
	Name        string  `json:"name" binding:"required"`
	TotalAmount float64 `json:"total_amount" binding:"required,gt=0"`
}

// UpdateTimelessRequest represents the request body for timeless payment
// update.
type UpdateTimelessRequest struct {
	Name        *string  `json:"name,omitempty"`
	TotalAmount *float64 `json:"total_amount,omitempty" binding:"omitempty,gt=0"`
}

// TimelessContributionResponse represents one history entry in API responses.
type TimelessContributionResponse struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// TimelessPaymentResponse represents a single timeless payment in API
// responses.
type TimelessPaymentResponse struct {
	ID            string                         `json:"id"`
	Name          string                         `json:"name"`
	TotalAmount   float64                        `json:"total_amount"`
	PaidAmount    float64                        `json:"paid_amount"`
	IsCompleted   bool                           `json:"is_completed"`
	Color         string                         `json:"color"`
	CreatedAt     time.Time                      `json:"created_at"`
	Contributions []TimelessContributionResponse `json:"contributions"`
}

// TimelessPaymentListResponse represents the response for listing timeless
// payments.
type TimelessPaymentListResponse struct {
	Payments []TimelessPaymentResponse `json:"payments"`
}

// ToTimelessPaymentResponse converts a domain TimelessPayment entity to its
// DTO.
func ToTimelessPaymentResponse(p *entity.TimelessPayment) TimelessPaymentResponse {
	contributions := make([]TimelessContributionResponse, len(p.Contributions))
	for i, c := range p.Contributions {
		contributions[i] = TimelessContributionResponse{
			ID:     c.ID.String(),
			Amount: c.Amount,
			Date:   c.Date,
		}
	}
	return TimelessPaymentResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		TotalAmount:   p.TotalAmount,
		PaidAmount:    p.PaidAmount,
		IsCompleted:   p.IsCompleted,
		Color:         p.Color,
		CreatedAt:     p.CreatedAt,
		Contributions: contributions,
	}
}

// ToTimelessPaymentListResponse converts a list of timeless payments to its
// DTO.
func ToTimelessPaymentListResponse(payments []*entity.TimelessPayment) TimelessPaymentListResponse {
	responses := make([]TimelessPaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToTimelessPaymentResponse(p)
	}
	return TimelessPaymentListResponse{
		Payments: responses,
	}
}
