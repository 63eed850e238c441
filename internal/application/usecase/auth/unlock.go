package auth

import (
	"context"
	"fmt"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
)

// UnlockInput represents the input for an unlock attempt.
type UnlockInput struct {
	PIN string
}

// UnlockOutput represents a successful unlock.
type UnlockOutput struct {
	Token string
}

// UnlockUseCase verifies the app PIN and issues a session token. Reminder
// markers are reset on unlock so a fresh session gets its reminders again.
type UnlockUseCase struct {
	settingsRepo adapter.SettingsRepository
	pinService   adapter.PINService
	tokenService adapter.TokenService
	tracker      adapter.ReminderTracker
}

// NewUnlockUseCase creates a new UnlockUseCase instance.
func NewUnlockUseCase(
	settingsRepo adapter.SettingsRepository,
	pinService adapter.PINService,
	tokenService adapter.TokenService,
	tracker adapter.ReminderTracker,
) *UnlockUseCase {
	return &UnlockUseCase{
		settingsRepo: settingsRepo,
		pinService:   pinService,
		tokenService: tokenService,
		tracker:      tracker,
	}
}

// Execute performs the unlock.
func (uc *UnlockUseCase) Execute(ctx context.Context, input UnlockInput) (*UnlockOutput, error) {
	hash, err := uc.settingsRepo.Get(ctx, adapter.SettingPINHash)
	if err != nil {
		return nil, fmt.Errorf("failed to read PIN setting: %w", err)
	}
	if hash == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePINNotSet,
			"no PIN configured",
			domainerror.ErrPINNotSet,
		)
	}

	if err := uc.pinService.VerifyPIN(hash, input.PIN); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPIN,
			"invalid PIN",
			domainerror.ErrInvalidPIN,
		)
	}

	token, err := uc.tokenService.GenerateSessionToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := uc.tracker.Reset(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset reminder markers: %w", err)
	}

	return &UnlockOutput{Token: token}, nil
}
