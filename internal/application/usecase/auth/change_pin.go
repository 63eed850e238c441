package auth

import (
	"context"
	"fmt"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

// ChangePINInput represents the input for a PIN change.
type ChangePINInput struct {
	CurrentPIN string
	NewPIN     string
}

// ChangePINUseCase replaces the app PIN after verifying the current one.
type ChangePINUseCase struct {
	settingsRepo adapter.SettingsRepository
	pinService   adapter.PINService
}

// NewChangePINUseCase creates a new ChangePINUseCase instance.
func NewChangePINUseCase(settingsRepo adapter.SettingsRepository, pinService adapter.PINService) *ChangePINUseCase {
	return &ChangePINUseCase{
		settingsRepo: settingsRepo,
		pinService:   pinService,
	}
}

// Execute performs the PIN change.
func (uc *ChangePINUseCase) Execute(ctx context.Context, input ChangePINInput) error {
	hash, err := uc.settingsRepo.Get(ctx, adapter.SettingPINHash)
	if err != nil {
		return fmt.Errorf("failed to read PIN setting: %w", err)
	}
	if hash == "" {
		return domainerror.NewAuthError(
			domainerror.ErrCodePINNotSet,
			"no PIN configured",
			domainerror.ErrPINNotSet,
		)
	}

	if err := uc.pinService.VerifyPIN(hash, input.CurrentPIN); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPIN,
			"invalid PIN",
			domainerror.ErrInvalidPIN,
		)
	}

	if err := uc.pinService.ValidatePINStrength(input.NewPIN); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeWeakPIN,
			"PIN does not meet minimum requirements",
			err,
		)
	}

	newHash, err := uc.pinService.HashPIN(input.NewPIN)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	if err := uc.settingsRepo.Set(ctx, adapter.SettingPINHash, newHash); err != nil {
		return fmt.Errorf("failed to store PIN: %w", err)
	}
	return nil
}
