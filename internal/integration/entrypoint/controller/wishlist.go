package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-personales/backend/internal/application/usecase/wishlist"
	"github.com/finanzas-personales/backend/internal/domain/entity"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/integration/entrypoint/dto"
)

// WishlistController handles wishlist endpoints.
type WishlistController struct {
	listUseCase    *wishlist.ListItemsUseCase
	createUseCase  *wishlist.CreateItemUseCase
	updateUseCase  *wishlist.UpdateItemUseCase
	deleteUseCase  *wishlist.DeleteItemUseCase
	promoteUseCase *wishlist.PromoteToGoalUseCase
}

// NewWishlistController creates a new wishlist controller instance.
func NewWishlistController(
	listUseCase *wishlist.ListItemsUseCase,
	createUseCase *wishlist.CreateItemUseCase,
	updateUseCase *wishlist.UpdateItemUseCase,
	deleteUseCase *wishlist.DeleteItemUseCase,
	promoteUseCase *wishlist.PromoteToGoalUseCase,
) *WishlistController {
	return &WishlistController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		promoteUseCase: promoteUseCase,
	}
}

// List handles GET /wishlist requests. Items come back grouped by category.
func (c *WishlistController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve wishlist",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWishlistResponse(output.Groups))
}

// Create handles POST /wishlist requests.
func (c *WishlistController) Create(ctx *gin.Context) {
	var req dto.CreateWishlistItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingWishlistFields),
		})
		return
	}

	input := wishlist.CreateItemInput{
		Name:            req.Name,
		Category:        req.Category,
		Priority:        entity.Priority(req.Priority),
		EstimatedAmount: req.EstimatedAmount,
		URL:             req.URL,
		Distributor:     req.Distributor,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWishlistError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWishlistItemResponse(output.Item))
}

// Update handles PATCH /wishlist/:id requests.
func (c *WishlistController) Update(ctx *gin.Context) {
	itemID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateWishlistItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := wishlist.UpdateItemInput{
		ItemID:             itemID,
		Name:               req.Name,
		Category:           req.Category,
		EstimatedAmount:    req.EstimatedAmount,
		EstimatedAmountSet: req.EstimatedAmount != nil,
		URL:                req.URL,
		Distributor:        req.Distributor,
	}
	if req.Priority != nil {
		priority := entity.Priority(*req.Priority)
		input.Priority = &priority
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWishlistError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWishlistItemResponse(output.Item))
}

// Delete handles DELETE /wishlist/:id requests.
func (c *WishlistController) Delete(ctx *gin.Context) {
	itemID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), wishlist.DeleteItemInput{ItemID: itemID}); err != nil {
		c.handleWishlistError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Promote handles POST /wishlist/:id/promote requests. The item becomes a
// savings goal and leaves the wishlist.
func (c *WishlistController) Promote(ctx *gin.Context) {
	itemID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.promoteUseCase.Execute(ctx.Request.Context(), wishlist.PromoteToGoalInput{ItemID: itemID})
	if err != nil {
		c.handleWishlistError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// handleWishlistError handles wishlist errors and returns appropriate HTTP
// responses.
func (c *WishlistController) handleWishlistError(ctx *gin.Context, err error) {
	var wishlistErr *domainerror.WishlistError
	if errors.As(err, &wishlistErr) {
		ctx.JSON(statusCodeForWishlistError(wishlistErr.Code), dto.ErrorResponse{
			Error: wishlistErr.Message,
			Code:  string(wishlistErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForWishlistError maps wishlist error codes to HTTP status codes.
func statusCodeForWishlistError(code domainerror.WishlistErrorCode) int {
	switch code {
	case domainerror.ErrCodeWishlistItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidWishlistPriority,
		domainerror.ErrCodeMissingWishlistFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
