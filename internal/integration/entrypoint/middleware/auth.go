// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/integration/entrypoint/dto"
)

// LockMiddleware enforces the optional app PIN. While no PIN is configured
// the API is open, matching the original app's local semantics; once a PIN
// exists every guarded route requires the session token issued on unlock.
type LockMiddleware struct {
	settingsRepo adapter.SettingsRepository
	tokenService adapter.TokenService
}

// NewLockMiddleware creates a new lock middleware instance.
func NewLockMiddleware(settingsRepo adapter.SettingsRepository, tokenService adapter.TokenService) *LockMiddleware {
	return &LockMiddleware{
		settingsRepo: settingsRepo,
		tokenService: tokenService,
	}
}

// RequireUnlocked returns a Gin middleware handler that enforces the session
// token whenever a PIN is configured.
func (m *LockMiddleware) RequireUnlocked() gin.HandlerFunc {
	return func(c *gin.Context) {
		pinHash, err := m.settingsRepo.Get(c.Request.Context(), adapter.SettingPINHash)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to check lock state",
			})
			c.Abort()
			return
		}
		if pinHash == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		if err := m.tokenService.ValidateSessionToken(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
