package dto

import (
	"time"

	"github.com/finanzas-personales/backend/internal/application/usecase/goal"
	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required"`
	TargetAmount float64 `json:"target_amount" binding:"gte=0"`
	Category     string  `json:"category"`
	Priority     string  `json:"priority" binding:"required,oneof=Alta Media Baja"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name         *string  `json:"name,omitempty"`
	TargetAmount *float64 `json:"target_amount,omitempty" binding:"omitempty,gte=0"`
	Category     *string  `json:"category,omitempty"`
	Priority     *string  `json:"priority,omitempty" binding:"omitempty,oneof=Alta Media Baja"`
}

// SetProjectionRequest represents the request body for configuring a goal's
// savings plan.
type SetProjectionRequest struct {
	Amount     float64 `json:"amount" binding:"gte=0"`
	Frequency  string  `json:"frequency" binding:"required"`
	TargetDate *string `json:"target_date,omitempty"`
}

// ContributeRequest represents the request body for a contribution.
type ContributeRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// ProjectionResponse represents a goal's projection in API responses.
type ProjectionResponse struct {
	Amount     float64 `json:"amount"`
	Frequency  string  `json:"frequency"`
	TargetDate *string `json:"target_date,omitempty"`
}

// GoalResponse represents a single savings goal in API responses.
type GoalResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	TargetAmount float64             `json:"target_amount"`
	SavedAmount  float64             `json:"saved_amount"`
	Category     string              `json:"category"`
	Priority     string              `json:"priority"`
	Color        string              `json:"color"`
	Progress     float64             `json:"progress"`
	IsCompleted  bool                `json:"is_completed"`
	Projection   *ProjectionResponse `json:"projection,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ContributeGoalResponse represents the response for a goal contribution.
type ContributeGoalResponse struct {
	Goal        GoalResponse  `json:"goal"`
	SpawnedGoal *GoalResponse `json:"spawned_goal,omitempty"`
	Completed   bool          `json:"completed"`
}

// ToGoalResponse converts a domain SavingsGoal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.SavingsGoal) GoalResponse {
	response := GoalResponse{
		ID:           g.ID.String(),
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		SavedAmount:  g.SavedAmount,
		Category:     g.Category,
		Priority:     string(g.Priority),
		Color:        g.Color,
		Progress:     g.Progress(),
		IsCompleted:  g.IsCompleted(),
		CreatedAt:    g.CreatedAt,
	}

	if g.Projection != nil {
		proj := ProjectionResponse{
			Amount:    g.Projection.Amount,
			Frequency: string(g.Projection.Frequency),
		}
		if g.Projection.TargetDate != nil {
			dateStr := g.Projection.TargetDate.Format(dateLayout)
			proj.TargetDate = &dateStr
		}
		response.Projection = &proj
	}

	return response
}

// ToGoalListResponse converts a list of goals to GoalListResponse.
func ToGoalListResponse(goals []*entity.SavingsGoal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals: responses,
	}
}

// ToContributeGoalResponse converts a contribution output to its DTO.
func ToContributeGoalResponse(output *goal.ContributeToGoalOutput) ContributeGoalResponse {
	response := ContributeGoalResponse{
		Goal:      ToGoalResponse(output.Goal),
		Completed: output.Completed,
	}
	if output.SpawnedGoal != nil {
		spawned := ToGoalResponse(output.SpawnedGoal)
		response.SpawnedGoal = &spawned
	}
	return response
}
