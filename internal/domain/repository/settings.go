package repository

import "context"

// Setting keys stored in the settings table.
const (
	SettingHomePage = "homepage"
)

// SettingsRepository is a small key/value store for user choices made
// through the shell's dialogs.
type SettingsRepository interface {
	// Get returns "" when the key is not set.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
