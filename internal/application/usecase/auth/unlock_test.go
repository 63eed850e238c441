package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/finanzas-personales/backend/internal/application/adapter"
	domainerror "github.com/finanzas-personales/backend/internal/domain/error"
	"github.com/finanzas-personales/backend/internal/integration/adapters"
)

type memorySettings struct {
	values map[string]string
}

func newMemorySettings() *memorySettings {
	return &memorySettings{values: make(map[string]string)}
}

func (s *memorySettings) Get(_ context.Context, key string) (string, error) {
	return s.values[key], nil
}

func (s *memorySettings) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func (s *memorySettings) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

type countingTracker struct {
	resets int
}

func (t *countingTracker) MarkNotified(_ context.Context, _ string) (bool, error) {
	return true, nil
}

func (t *countingTracker) Reset(_ context.Context) error {
	t.resets++
	return nil
}

type staticTokenService struct{}

func (staticTokenService) GenerateSessionToken(_ context.Context) (string, error) {
	return "session-token", nil
}

func (staticTokenService) ValidateSessionToken(_ context.Context, _ string) error {
	return nil
}

func configurePIN(t *testing.T, settings *memorySettings, pinService adapter.PINService, pin string) {
	t.Helper()
	hash, err := pinService.HashPIN(pin)
	if err != nil {
		t.Fatalf("failed to hash PIN: %v", err)
	}
	settings.values[adapter.SettingPINHash] = hash
}

func TestUnlock(t *testing.T) {
	ctx := context.Background()
	pinService := adapters.NewPINService()

	t.Run("correct PIN issues a token and resets reminders", func(t *testing.T) {
		settings := newMemorySettings()
		configurePIN(t, settings, pinService, "1234")
		tracker := &countingTracker{}
		uc := NewUnlockUseCase(settings, pinService, staticTokenService{}, tracker)

		out, err := uc.Execute(ctx, UnlockInput{PIN: "1234"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token == "" {
			t.Error("expected a session token")
		}
		if tracker.resets != 1 {
			t.Errorf("expected reminder markers reset once, got %d", tracker.resets)
		}
	})

	t.Run("wrong PIN is rejected", func(t *testing.T) {
		settings := newMemorySettings()
		configurePIN(t, settings, pinService, "1234")
		uc := NewUnlockUseCase(settings, pinService, staticTokenService{}, &countingTracker{})

		_, err := uc.Execute(ctx, UnlockInput{PIN: "0000"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidPIN {
			t.Errorf("expected invalid PIN error, got %v", err)
		}
	})

	t.Run("unlock without a configured PIN fails", func(t *testing.T) {
		uc := NewUnlockUseCase(newMemorySettings(), pinService, staticTokenService{}, &countingTracker{})

		_, err := uc.Execute(ctx, UnlockInput{PIN: "1234"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodePINNotSet {
			t.Errorf("expected PIN not set error, got %v", err)
		}
	})
}

func TestSetupAndChangePIN(t *testing.T) {
	ctx := context.Background()
	pinService := adapters.NewPINService()

	t.Run("setup stores a verifiable hash", func(t *testing.T) {
		settings := newMemorySettings()
		uc := NewSetupPINUseCase(settings, pinService)

		if err := uc.Execute(ctx, SetupPINInput{PIN: "1234"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		hash := settings.values[adapter.SettingPINHash]
		if hash == "" || hash == "1234" {
			t.Fatalf("expected a stored hash, got %q", hash)
		}
		if err := pinService.VerifyPIN(hash, "1234"); err != nil {
			t.Errorf("stored hash must verify the PIN: %v", err)
		}
	})

	t.Run("setup rejects a weak PIN", func(t *testing.T) {
		uc := NewSetupPINUseCase(newMemorySettings(), pinService)

		err := uc.Execute(ctx, SetupPINInput{PIN: "12"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeWeakPIN {
			t.Errorf("expected weak PIN error, got %v", err)
		}
	})

	t.Run("setup conflicts when a PIN already exists", func(t *testing.T) {
		settings := newMemorySettings()
		configurePIN(t, settings, pinService, "1234")
		uc := NewSetupPINUseCase(settings, pinService)

		err := uc.Execute(ctx, SetupPINInput{PIN: "5678"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodePINAlreadySet {
			t.Errorf("expected PIN already set error, got %v", err)
		}
	})

	t.Run("change requires the current PIN", func(t *testing.T) {
		settings := newMemorySettings()
		configurePIN(t, settings, pinService, "1234")
		uc := NewChangePINUseCase(settings, pinService)

		err := uc.Execute(ctx, ChangePINInput{CurrentPIN: "0000", NewPIN: "9876"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidPIN {
			t.Errorf("expected invalid PIN error, got %v", err)
		}
	})

	t.Run("change replaces the stored hash", func(t *testing.T) {
		settings := newMemorySettings()
		configurePIN(t, settings, pinService, "1234")
		uc := NewChangePINUseCase(settings, pinService)

		if err := uc.Execute(ctx, ChangePINInput{CurrentPIN: "1234", NewPIN: "9876"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := pinService.VerifyPIN(settings.values[adapter.SettingPINHash], "9876"); err != nil {
			t.Errorf("new PIN must verify: %v", err)
		}
	})
}
