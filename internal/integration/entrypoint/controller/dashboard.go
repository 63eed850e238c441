package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-personales/backend/internal/application/usecase/dashboard"
	"github.com/finanzas-personales/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the dashboard summary endpoint.
type DashboardController struct {
	getSummaryUseCase *dashboard.GetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getSummaryUseCase *dashboard.GetSummaryUseCase) *DashboardController {
	return &DashboardController{
		getSummaryUseCase: getSummaryUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output))
}
