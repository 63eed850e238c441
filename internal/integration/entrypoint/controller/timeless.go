package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-personales/backend/internal/application/usecase/timeless"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/integration/entrypoint/dto"
)

// TimelessController handles timeless payment endpoints.
type TimelessController struct {
	listUseCase       *timeless.ListTimelessUseCase
	createUseCase     *timeless.CreateTimelessUseCase
	updateUseCase     *timeless.UpdateTimelessUseCase
	deleteUseCase     *timeless.DeleteTimelessUseCase
	contributeUseCase *timeless.ContributeUseCase
}

// NewTimelessController creates a new timeless payment controller instance.
func NewTimelessController(
	listUseCase *timeless.ListTimelessUseCase,
	createUseCase *timeless.CreateTimelessUseCase,
	updateUseCase *timeless.UpdateTimelessUseCase,
	deleteUseCase *timeless.DeleteTimelessUseCase,
	contributeUseCase *timeless.ContributeUseCase,
) *TimelessController {
	return &TimelessController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		contributeUseCase: contributeUseCase,
	}
}

// List handles GET /timeless-payments requests.
func (c *TimelessController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve timeless payments",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimelessPaymentListResponse(output.Payments))
}

// Create handles POST /timeless-payments requests.
func (c *TimelessController) Create(ctx *gin.Context) {
	var req dto.CreateTimelessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTimelessFields),
		})
		return
	}

	input := timeless.CreateTimelessInput{
		Name:        req.Name,
		TotalAmount: req.TotalAmount,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTimelessError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTimelessPaymentResponse(output.Payment))
}

// Update handles PATCH /timeless-payments/:id requests.
func (c *TimelessController) Update(ctx *gin.Context) {
	paymentID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTimelessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := timeless.UpdateTimelessInput{
		PaymentID:   paymentID,
		Name:        req.Name,
		TotalAmount: req.TotalAmount,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTimelessError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimelessPaymentResponse(output.Payment))
}

// Delete handles DELETE /timeless-payments/:id requests.
func (c *TimelessController) Delete(ctx *gin.Context) {
	paymentID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), timeless.DeleteTimelessInput{PaymentID: paymentID}); err != nil {
		c.handleTimelessError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Contribute handles POST /timeless-payments/:id/contributions requests.
func (c *TimelessController) Contribute(ctx *gin.Context) {
	paymentID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ContributeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := timeless.ContributeInput{
		PaymentID: paymentID,
		Amount:    req.Amount,
	}

	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTimelessError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimelessPaymentResponse(output.Payment))
}

// handleTimelessError handles timeless payment errors and returns appropriate
// HTTP responses.
func (c *TimelessController) handleTimelessError(ctx *gin.Context, err error) {
	var timelessErr *domainerror.TimelessError
	if errors.As(err, &timelessErr) {
		ctx.JSON(statusCodeForTimelessError(timelessErr.Code), dto.ErrorResponse{
			Error: timelessErr.Message,
			Code:  string(timelessErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForTimelessError maps timeless error codes to HTTP status codes.
func statusCodeForTimelessError(code domainerror.TimelessErrorCode) int {
	switch code {
	case domainerror.ErrCodeTimelessNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTotalAmount,
		domainerror.ErrCodeMissingTimelessFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
