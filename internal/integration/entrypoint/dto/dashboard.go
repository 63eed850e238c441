package dto

import (
	"github.com/finanzas-personales/backend/internal/application/usecase/dashboard"
)

// UpcomingObligationResponse is one entry in the merged obligations view.
// Virtual entries carry a "card-<id>" id so contributions route to the card.
type UpcomingObligationResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Remaining float64 `json:"remaining"`
	DueDate   string  `json:"due_date"`
	Category  string  `json:"category"`
	Color     string  `json:"color"`
	IsVirtual bool    `json:"is_virtual"`
}

// CategorySpendResponse is one category's share of this month's spend.
type CategorySpendResponse struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// TopGoalResponse is one entry in the goal progress ranking.
type TopGoalResponse struct {
	Goal     GoalResponse `json:"goal"`
	Progress float64      `json:"progress"`
}

// DashboardSummaryResponse represents the aggregated dashboard view.
type DashboardSummaryResponse struct {
	Upcoming       []UpcomingObligationResponse `json:"upcoming"`
	MonthlyPaid    float64                      `json:"monthly_paid"`
	MonthlyPending float64                      `json:"monthly_pending"`
	TotalSavings   float64                      `json:"total_savings"`
	CategorySpend  []CategorySpendResponse      `json:"category_spend"`
	TopGoals       []TopGoalResponse            `json:"top_goals"`
}

// ToDashboardSummaryResponse converts a summary output to its DTO.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	response := DashboardSummaryResponse{
		Upcoming:       make([]UpcomingObligationResponse, len(output.Upcoming)),
		MonthlyPaid:    output.MonthlyPaid,
		MonthlyPending: output.MonthlyPending,
		TotalSavings:   output.TotalSavings,
		CategorySpend:  make([]CategorySpendResponse, len(output.CategorySpend)),
		TopGoals:       make([]TopGoalResponse, len(output.TopGoals)),
	}

	for i, o := range output.Upcoming {
		id := o.ID.String()
		if o.IsVirtual {
			id = virtualCardPrefix + id
		}
		response.Upcoming[i] = UpcomingObligationResponse{
			ID:        id,
			Name:      o.Name,
			Remaining: o.Remaining,
			DueDate:   o.DueDate.Format(dateLayout),
			Category:  o.Category,
			Color:     o.Color,
			IsVirtual: o.IsVirtual,
		}
	}
	for i, s := range output.CategorySpend {
		response.CategorySpend[i] = CategorySpendResponse{
			Category:   s.Category,
			Amount:     s.Amount,
			Percentage: s.Percentage,
		}
	}
	for i, g := range output.TopGoals {
		response.TopGoals[i] = TopGoalResponse{
			Goal:     ToGoalResponse(g.Goal),
			Progress: g.Progress,
		}
	}

	return response
}
