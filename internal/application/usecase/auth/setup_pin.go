// Package auth contains the app lock use cases: an optional PIN guarding
// the API, with a signed session token issued on unlock.
package auth

import (
	"context"
	"fmt"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

// SetupPINInput represents the input for initial PIN setup.
type SetupPINInput struct {
	PIN string
}

// SetupPINUseCase configures the app PIN for the first time. Changing an
// existing PIN goes through ChangePINUseCase, which requires the current PIN.
type SetupPINUseCase struct {
	settingsRepo adapter.SettingsRepository
	pinService   adapter.PINService
}

// NewSetupPINUseCase creates a new SetupPINUseCase instance.
func NewSetupPINUseCase(settingsRepo adapter.SettingsRepository, pinService adapter.PINService) *SetupPINUseCase {
	return &SetupPINUseCase{
		settingsRepo: settingsRepo,
		pinService:   pinService,
	}
}

// Execute stores the PIN hash.
func (uc *SetupPINUseCase) Execute(ctx context.Context, input SetupPINInput) error {
	existing, err := uc.settingsRepo.Get(ctx, adapter.SettingPINHash)
	if err != nil {
		return fmt.Errorf("failed to read PIN setting: %w", err)
	}
	if existing != "" {
		return domainerror.NewAuthError(
			domainerror.ErrCodePINAlreadySet,
			"a PIN is already configured",
			domainerror.ErrPINAlreadySet,
		)
	}

	if err := uc.pinService.ValidatePINStrength(input.PIN); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWeakPIN,
			"PIN does not meet minimum requirements",
			err,
		)
	}

	hash, err := uc.pinService.HashPIN(input.PIN)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	if err := uc.settingsRepo.Set(ctx, adapter.SettingPINHash, hash); err != nil {
		return fmt.Errorf("failed to store PIN: %w", err)
	}
	return nil
}
