package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-personales/backend/internal/application/usecase/creditcard"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/integration/entrypoint/dto"
)

// CreditCardController handles credit card endpoints.
type CreditCardController struct {
	listUseCase          *creditcard.ListCardsUseCase
	createUseCase        *creditcard.CreateCardUseCase
	updateUseCase        *creditcard.UpdateCardUseCase
	updateBalanceUseCase *creditcard.UpdateBalanceUseCase
	deleteUseCase        *creditcard.DeleteCardUseCase
	runCycleUseCase      *creditcard.RunCutOffCycleUseCase
}

// NewCreditCardController creates a new credit card controller instance.
func NewCreditCardController(
	listUseCase *creditcard.ListCardsUseCase,
	createUseCase *creditcard.CreateCardUseCase,
	updateUseCase *creditcard.UpdateCardUseCase,
	updateBalanceUseCase *creditcard.UpdateBalanceUseCase,
	deleteUseCase *creditcard.DeleteCardUseCase,
	runCycleUseCase *creditcard.RunCutOffCycleUseCase,
) *CreditCardController {
	return &CreditCardController{
		listUseCase:          listUseCase,
		createUseCase:        createUseCase,
		updateUseCase:        updateUseCase,
		updateBalanceUseCase: updateBalanceUseCase,
		deleteUseCase:        deleteUseCase,
		runCycleUseCase:      runCycleUseCase,
	}
}

// List handles GET /credit-cards requests.
func (c *CreditCardController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardListResponse(output.Cards))
}

// Create handles POST /credit-cards requests.
func (c *CreditCardController) Create(ctx *gin.Context) {
	var req dto.CreateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCardFields),
		})
		return
	}

	input := creditcard.CreateCardInput{
		Name:              req.Name,
		CreditLimit:       req.CreditLimit,
		CurrentBalance:    req.CurrentBalance,
		CutOffDay:         req.CutOffDay,
		PaymentDueDateDay: req.PaymentDueDateDay,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(output.Card))
}

// Update handles PATCH /credit-cards/:id requests.
func (c *CreditCardController) Update(ctx *gin.Context) {
	cardID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := creditcard.UpdateCardInput{
		CardID:            cardID,
		Name:              req.Name,
		CreditLimit:       req.CreditLimit,
		CutOffDay:         req.CutOffDay,
		PaymentDueDateDay: req.PaymentDueDateDay,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(output.Card))
}

// UpdateBalance handles PUT /credit-cards/:id/balance requests.
func (c *CreditCardController) UpdateBalance(ctx *gin.Context) {
	cardID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidBalance),
		})
		return
	}

	input := creditcard.UpdateBalanceInput{
		CardID:     cardID,
		NewBalance: req.CurrentBalance,
	}

	output, err := c.updateBalanceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(output.Card))
}

// Delete handles DELETE /credit-cards/:id requests.
func (c *CreditCardController) Delete(ctx *gin.Context) {
	cardID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), creditcard.DeleteCardInput{CardID: cardID}); err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RunCycle handles POST /credit-cards/run-cycle requests. The cycle engine
// also runs on the background ticker; this endpoint forces a pass.
func (c *CreditCardController) RunCycle(ctx *gin.Context) {
	output, err := c.runCycleUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCutOffCycleResponse(output))
}

// handleCardError handles credit card errors and returns appropriate HTTP
// responses.
func (c *CreditCardController) handleCardError(ctx *gin.Context, err error) {
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

// statusCodeForCardError maps card error codes to HTTP status codes.
func statusCodeForCardError(code domainerror.CardErrorCode) int {
	switch code {
	case domainerror.ErrCodeCardNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidCutOffDay,
		domainerror.ErrCodeInvalidDueDateDay,
		domainerror.ErrCodeInvalidCreditLimit,
		domainerror.ErrCodeInvalidBalance,
		domainerror.ErrCodeMissingCardFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
