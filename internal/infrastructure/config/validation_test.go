package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "negative max age",
			mutate:  func(c *Config) { c.Logging.MaxAge = -1 },
			wantErr: "logging.max_age",
		},
		{
			name:    "bad palette color",
			mutate:  func(c *Config) { c.Appearance.DarkPalette.Accent = "green" },
			wantErr: "appearance.dark_palette.accent",
		},
		{
			name:    "zoom out of range",
			mutate:  func(c *Config) { c.DefaultWebpageZoom = 9 },
			wantErr: "default_webpage_zoom",
		},
		{
			name:    "ui scale out of range",
			mutate:  func(c *Config) { c.DefaultUIScale = 0.1 },
			wantErr: "default_ui_scale",
		},
		{
			name:    "zero popup height",
			mutate:  func(c *Config) { c.Popup.DefaultHeight = 0 },
			wantErr: "popup.default_width and popup.default_height",
		},
		{
			name:    "zero text threshold",
			mutate:  func(c *Config) { c.Popup.AutoClose.MaxTextLength = 0 },
			wantErr: "max_text_length",
		},
		{
			name:    "negative delay",
			mutate:  func(c *Config) { c.Popup.AutoClose.Delay = -1 },
			wantErr: "delay",
		},
		{
			name: "enabled without matchers",
			mutate: func(c *Config) {
				c.Popup.AutoClose.Keywords = nil
				c.Popup.AutoClose.BlankURLs = nil
			},
			wantErr: "at least one keyword",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_DisabledAutoCloseNeedsNoMatchers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Popup.AutoClose.Enabled = false
	cfg.Popup.AutoClose.Keywords = nil
	cfg.Popup.AutoClose.BlankURLs = nil

	assert.NoError(t, validateConfig(cfg))
}
