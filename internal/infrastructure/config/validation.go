package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/miniworld/internal/domain/entity"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateScaling(config)...)
	validationErrors = append(validationErrors, validatePopup(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level %q must be one of trace, debug, info, warn, error, disabled", config.Logging.Level))
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	p := config.Appearance.DarkPalette
	colors := map[string]string{
		"background":      p.Background,
		"surface":         p.Surface,
		"surface_variant": p.SurfaceVariant,
		"text":            p.Text,
		"muted":           p.Muted,
		"accent":          p.Accent,
		"border":          p.Border,
	}
	for name, value := range colors {
		if value != "" && !hexColor.MatchString(value) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("appearance.dark_palette.%s %q must be a hex color", name, value))
		}
	}
	return validationErrors
}

func validateScaling(config *Config) []string {
	var validationErrors []string
	if config.DefaultWebpageZoom < entity.ZoomMin || config.DefaultWebpageZoom > entity.ZoomMax {
		validationErrors = append(validationErrors,
			fmt.Sprintf("default_webpage_zoom must be between %.2f and %.1f", entity.ZoomMin, entity.ZoomMax))
	}
	if config.DefaultUIScale < 0.5 || config.DefaultUIScale > 4.0 {
		validationErrors = append(validationErrors, "default_ui_scale must be between 0.5 and 4.0")
	}
	return validationErrors
}

func validatePopup(config *Config) []string {
	var validationErrors []string
	p := config.Popup
	if p.DefaultWidth <= 0 || p.DefaultHeight <= 0 {
		validationErrors = append(validationErrors, "popup.default_width and popup.default_height must be positive")
	}

	ac := p.AutoClose
	if ac.MaxTextLength <= 0 {
		validationErrors = append(validationErrors, "popup.auto_close.max_text_length must be positive")
	}
	if ac.Delay < 0 {
		validationErrors = append(validationErrors, "popup.auto_close.delay must be non-negative")
	}
	if ac.Enabled && len(ac.Keywords) == 0 && len(ac.BlankURLs) == 0 {
		validationErrors = append(validationErrors,
			"popup.auto_close needs at least one keyword or blank URL when enabled")
	}
	return validationErrors
}
