package adapter

import "context"

// Well-known settings keys. The values mirror the storage keys the original
// app kept alongside its entity collections.
const (
	SettingTheme   = "theme"
	SettingPINHash = "app_pin"
)

// SettingsRepository defines the interface for app-level key/value settings.
type SettingsRepository interface {
	// Get returns the value for a key, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the value for a key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
