package config

import "time"

// Config represents the complete configuration for miniworld.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database" toml:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
	// DefaultWebpageZoom is the zoom used for hosts without a saved level (1.0 = 100%)
	DefaultWebpageZoom float64 `mapstructure:"default_webpage_zoom" yaml:"default_webpage_zoom" toml:"default_webpage_zoom" jsonschema:"minimum=0.25,maximum=5"`
	// DefaultUIScale scales popup default sizes (1.0 = 100%, 2.0 = 200%)
	DefaultUIScale float64 `mapstructure:"default_ui_scale" yaml:"default_ui_scale" toml:"default_ui_scale" jsonschema:"minimum=0.5,maximum=4"`
	// Homepage is used when no homepage was picked in the shell. Empty means the new tab page.
	Homepage string `mapstructure:"homepage" yaml:"homepage" toml:"homepage"`
	// Popup controls windows opened by window.open().
	Popup PopupConfig `mapstructure:"popup" yaml:"popup" toml:"popup"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LoggingConfig controls log verbosity and file output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=console,enum=json"`
	MaxAge int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
}

// ColorPalette holds the colors of the terminal UI.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border"`
}

// AppearanceConfig holds the CLI palette.
type AppearanceConfig struct {
	DarkPalette ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette" toml:"dark_palette"`
}

// PopupConfig controls popup windows.
type PopupConfig struct {
	// DefaultWidth and DefaultHeight are the unscaled size used when the page
	// does not request one.
	DefaultWidth  int `mapstructure:"default_width" yaml:"default_width" toml:"default_width" jsonschema:"minimum=1"`
	DefaultHeight int `mapstructure:"default_height" yaml:"default_height" toml:"default_height" jsonschema:"minimum=1"`
	// UserAgentToken is appended to the engine user agent.
	UserAgentToken string `mapstructure:"user_agent_token" yaml:"user_agent_token" toml:"user_agent_token"`
	// ContextMenus enables the engine's default context menus in popups.
	ContextMenus bool            `mapstructure:"context_menus" yaml:"context_menus" toml:"context_menus"`
	AutoClose    AutoCloseConfig `mapstructure:"auto_close" yaml:"auto_close" toml:"auto_close"`
}

// AutoCloseConfig tunes the closing of popups that land on an empty
// success/callback page at the end of an auth flow.
type AutoCloseConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	// Keywords are matched case-insensitively as substrings of the URL.
	Keywords []string `mapstructure:"keywords" yaml:"keywords" toml:"keywords"`
	// BlankURLs are matched exactly (case-insensitive).
	BlankURLs []string `mapstructure:"blank_urls" yaml:"blank_urls" toml:"blank_urls"`
	// MaxTextLength is the visible text length below which a page counts as empty.
	MaxTextLength int `mapstructure:"max_text_length" yaml:"max_text_length" toml:"max_text_length" jsonschema:"minimum=1"`
	// Delay before closing, e.g. "1.2s".
	Delay time.Duration `mapstructure:"delay" yaml:"delay" toml:"delay"`
}
