package config

import (
	"slices"

	"github.com/bnema/miniworld/internal/domain/service"
)

// Default configuration constants
const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogAgeDays = 7 // days

	defaultWebpageZoom = 1.0
	defaultUIScale     = 1.0

	defaultPopupWidth  = 800
	defaultPopupHeight = 600
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			MaxAge: defaultMaxLogAgeDays,
		},
		Appearance: AppearanceConfig{
			DarkPalette: ColorPalette{
				Background:     "#0a0a0b",
				Surface:        "#1a1a1b",
				SurfaceVariant: "#2d2d2d",
				Text:           "#ffffff",
				Muted:          "#909090",
				Accent:         "#4ade80",
				Border:         "#333333",
			},
		},
		DefaultWebpageZoom: defaultWebpageZoom,
		DefaultUIScale:     defaultUIScale,
		Popup: PopupConfig{
			DefaultWidth:   defaultPopupWidth,
			DefaultHeight:  defaultPopupHeight,
			UserAgentToken: service.DefaultUserAgentToken,
			ContextMenus:   true,
			AutoClose: AutoCloseConfig{
				Enabled:       true,
				Keywords:      slices.Clone(service.DefaultSuccessKeywords),
				BlankURLs:     slices.Clone(service.DefaultBlankURLs),
				MaxTextLength: service.DefaultMaxTextLength,
				Delay:         service.DefaultAutoCloseDelay,
			},
		},
	}
}

// AutoClosePolicy converts the popup auto-close section to the domain policy.
func (c AutoCloseConfig) AutoClosePolicy() service.AutoClosePolicy {
	return service.AutoClosePolicy{
		Enabled:       c.Enabled,
		Keywords:      slices.Clone(c.Keywords),
		BlankURLs:     slices.Clone(c.BlankURLs),
		MaxTextLength: c.MaxTextLength,
		Delay:         c.Delay,
	}
}
