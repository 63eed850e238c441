package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-personales/backend/internal/application/usecase/payment"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/integration/entrypoint/dto"
)

// PaymentController handles scheduled payment endpoints.
type PaymentController struct {
	listUseCase       *payment.ListPaymentsUseCase
	createUseCase     *payment.CreatePaymentUseCase
	updateUseCase     *payment.UpdatePaymentUseCase
	deleteUseCase     *payment.DeletePaymentUseCase
	contributeUseCase *payment.ContributeToPaymentUseCase
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	listUseCase *payment.ListPaymentsUseCase,
	createUseCase *payment.CreatePaymentUseCase,
	updateUseCase *payment.UpdatePaymentUseCase,
	deleteUseCase *payment.DeletePaymentUseCase,
	contributeUseCase *payment.ContributeToPaymentUseCase,
) *PaymentController {
	return &PaymentController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		contributeUseCase: contributeUseCase,
	}
}

// List handles GET /payments requests. The optional ?filter= query selects
// the view: all_unpaid (default), urgent, overdue or paid.
func (c *PaymentController) List(ctx *gin.Context) {
	input := payment.ListPaymentsInput{
		Filter: payment.Filter(ctx.DefaultQuery("filter", string(payment.FilterAllUnpaid))),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(output.Payments))
}

// Create handles POST /payments requests.
func (c *PaymentController) Create(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingPaymentFields),
		})
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDueDate),
		})
		return
	}

	input := payment.CreatePaymentInput{
		Name:      req.Name,
		Amount:    req.Amount,
		DueDate:   dueDate,
		Category:  req.Category,
		Frequency: entity.Frequency(req.Frequency),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(output.Payment))
}

// Update handles PATCH /payments/:id requests.
func (c *PaymentController) Update(ctx *gin.Context) {
	paymentID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := payment.UpdatePaymentInput{
		PaymentID: paymentID,
		Name:      req.Name,
		Amount:    req.Amount,
		Category:  req.Category,
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDueDate),
			})
			return
		}
		input.DueDate = &dueDate
	}
	if req.Frequency != nil {
		frequency := entity.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentResponse(output.Payment))
}

// Delete handles DELETE /payments/:id requests.
func (c *PaymentController) Delete(ctx *gin.Context) {
	paymentID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), payment.DeletePaymentInput{PaymentID: paymentID}); err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Contribute handles POST /payments/contributions requests. The target id is
// either a payment id or "card-<id>" for a virtual card obligation.
func (c *PaymentController) Contribute(ctx *gin.Context) {
	var req dto.ContributePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidPaymentAmount),
		})
		return
	}

	target, err := dto.ParseContributionTarget(req.TargetID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	input := payment.ContributeToPaymentInput{
		Target: target,
		Amount: req.Amount,
	}

	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContributePaymentResponse(output))
}

// handlePaymentError handles payment errors and returns appropriate HTTP
// responses. Card lookups during a virtual contribution can surface card
// errors, so those are handled here too.
func (c *PaymentController) handlePaymentError(ctx *gin.Context, err error) {
	var paymentErr *domainerror.PaymentError
	if errors.As(err, &paymentErr) {
		ctx.JSON(statusCodeForPaymentError(paymentErr.Code), dto.ErrorResponse{
			Error: paymentErr.Message,
			Code:  string(paymentErr.Code),
		})
		return
	}

	var cardErr *domainerror.CardError
	if errors.As(err, &cardErr) {
		ctx.JSON(statusCodeForCardError(cardErr.Code), dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForPaymentError maps payment error codes to HTTP status codes.
func statusCodeForPaymentError(code domainerror.PaymentErrorCode) int {
	switch code {
	case domainerror.ErrCodePaymentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPaymentAmount,
		domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeInvalidDueDate,
		domainerror.ErrCodeInvalidPaymentFilter,
		domainerror.ErrCodeMissingPaymentFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
