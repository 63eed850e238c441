package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/application/usecase/auth"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/integration/entrypoint/dto"
)

// AuthController handles PIN lock endpoints.
type AuthController struct {
	setupPINUseCase  *auth.SetupPINUseCase
	unlockUseCase    *auth.UnlockUseCase
	changePINUseCase *auth.ChangePINUseCase
	settingsRepo     adapter.SettingsRepository
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	setupPINUseCase *auth.SetupPINUseCase,
	unlockUseCase *auth.UnlockUseCase,
	changePINUseCase *auth.ChangePINUseCase,
	settingsRepo adapter.SettingsRepository,
) *AuthController {
	return &AuthController{
		setupPINUseCase:  setupPINUseCase,
		unlockUseCase:    unlockUseCase,
		changePINUseCase: changePINUseCase,
		settingsRepo:     settingsRepo,
	}
}

// Status handles GET /auth/status requests, reporting whether a PIN is
// configured.
func (c *AuthController) Status(ctx *gin.Context) {
	pinHash, err := c.settingsRepo.Get(ctx.Request.Context(), adapter.SettingPINHash)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to check lock state",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthStatusResponse{
		PINConfigured: pinHash != "",
	})
}

// SetupPIN handles POST /auth/pin requests.
func (c *AuthController) SetupPIN(ctx *gin.Context) {
	var req dto.SetupPINRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeWeakPIN),
		})
		return
	}

	if err := c.setupPINUseCase.Execute(ctx.Request.Context(), auth.SetupPINInput{PIN: req.PIN}); err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{
		Message: "PIN configured",
	})
}

// Unlock handles POST /auth/unlock requests.
func (c *AuthController) Unlock(ctx *gin.Context) {
	var req dto.UnlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.unlockUseCase.Execute(ctx.Request.Context(), auth.UnlockInput{PIN: req.PIN})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UnlockResponse{
		Token: output.Token,
	})
}

// ChangePIN handles PUT /auth/pin requests.
func (c *AuthController) ChangePIN(ctx *gin.Context) {
	var req dto.ChangePINRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := auth.ChangePINInput{
		CurrentPIN: req.CurrentPIN,
		NewPIN:     req.NewPIN,
	}

	if err := c.changePINUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "PIN updated",
	})
}

// handleAuthError handles auth errors and returns appropriate HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForAuthError maps auth error codes to HTTP status codes.
func statusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodePINNotSet, domainerror.ErrCodeWeakPIN:
		return http.StatusBadRequest
	case domainerror.ErrCodePINAlreadySet:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidPIN, domainerror.ErrCodeInvalidToken, domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
