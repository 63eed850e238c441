package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finanzas-personales/backend/internal/application/usecase/goal"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/integration/entrypoint/dto"
)

// GoalController handles savings goal endpoints.
type GoalController struct {
	listUseCase          *goal.ListGoalsUseCase
	createUseCase        *goal.CreateGoalUseCase
	updateUseCase        *goal.UpdateGoalUseCase
	deleteUseCase        *goal.DeleteGoalUseCase
	contributeUseCase    *goal.ContributeToGoalUseCase
	setProjectionUseCase *goal.SetProjectionUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	contributeUseCase *goal.ContributeToGoalUseCase,
	setProjectionUseCase *goal.SetProjectionUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:          listUseCase,
		createUseCase:        createUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		contributeUseCase:    contributeUseCase,
		setProjectionUseCase: setProjectionUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve goals",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := goal.CreateGoalInput{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Category:     req.Category,
		Priority:     entity.Priority(req.Priority),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	goalID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:       goalID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Category:     req.Category,
	}
	if req.Priority != nil {
		priority := entity.Priority(*req.Priority)
		input.Priority = &priority
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	goalID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{GoalID: goalID}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Contribute handles POST /goals/:id/contributions requests.
func (c *GoalController) Contribute(ctx *gin.Context) {
	goalID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ContributeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidContribution),
		})
		return
	}

	input := goal.ContributeToGoalInput{
		GoalID: goalID,
		Amount: req.Amount,
	}

	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContributeGoalResponse(output))
}

// SetProjection handles PUT /goals/:id/projection requests.
func (c *GoalController) SetProjection(ctx *gin.Context) {
	goalID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.SetProjectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidProjection),
		})
		return
	}

	input := goal.SetProjectionInput{
		GoalID:    goalID,
		Amount:    req.Amount,
		Frequency: entity.Frequency(req.Frequency),
	}
	if req.TargetDate != nil {
		targetDate, err := time.Parse("2006-01-02", *req.TargetDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid target date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidProjection),
			})
			return
		}
		input.TargetDate = &targetDate
	}

	output, err := c.setProjectionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(statusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForGoalError maps goal error codes to HTTP status codes.
func statusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidGoalPriority,
		domainerror.ErrCodeInvalidContribution,
		domainerror.ErrCodeInvalidProjection,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam parses the :id URL parameter, writing a 400 response when it
// is not a valid UUID.
func parseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid id format",
		})
		return uuid.Nil, false
	}
	return id, true
}
