package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/domain/repository"
	"github.com/bnema/miniworld/internal/logging"
)

// ManageHomepageUseCase reads and stores the homepage chosen by the user.
// A stored value wins over the configured default.
type ManageHomepageUseCase struct {
	settings   repository.SettingsRepository
	configured string
}

// NewManageHomepageUseCase creates a homepage use case. configured is the
// homepage from the config file.
func NewManageHomepageUseCase(settings repository.SettingsRepository, configured string) *ManageHomepageUseCase {
	return &ManageHomepageUseCase{settings: settings, configured: configured}
}

// Get returns the effective homepage. It never returns "": the new tab
// page stands in for an unset value.
func (uc *ManageHomepageUseCase) Get(ctx context.Context) (string, error) {
	stored, err := uc.settings.Get(ctx, repository.SettingHomePage)
	if err != nil {
		return "", fmt.Errorf("failed to get homepage: %w", err)
	}

	homePage := stored
	if homePage == "" {
		homePage = uc.configured
	}
	if entity.IsNewTabHomePage(homePage) {
		return entity.NewTabURL, nil
	}
	return homePage, nil
}

// Set normalizes input and stores it. placeholder is the text the picker
// shows for the new tab page; submitting it unchanged selects that page.
func (uc *ManageHomepageUseCase) Set(ctx context.Context, input, placeholder string) (string, error) {
	homePage := entity.NormalizeHomePage(input, placeholder)

	if err := uc.settings.Set(ctx, repository.SettingHomePage, homePage); err != nil {
		return "", fmt.Errorf("failed to save homepage: %w", err)
	}

	logging.FromContext(ctx).Info().Str("homepage", homePage).Msg("homepage saved")
	return homePage, nil
}

// Reset forgets the stored homepage so the configured one applies again.
func (uc *ManageHomepageUseCase) Reset(ctx context.Context) error {
	if err := uc.settings.Delete(ctx, repository.SettingHomePage); err != nil {
		return fmt.Errorf("failed to reset homepage: %w", err)
	}
	return nil
}
