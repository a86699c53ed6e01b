package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/bnema/miniworld/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionAppearance = "Appearance"
	SectionLogging    = "Logging"
	SectionDatabase   = "Database"
	SectionPopup      = "Popup"
	SectionAutoClose  = "Popup Auto-Close"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 24)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getPopupKeys(defaults)...)
	keys = append(keys, p.getAutoCloseKeys(defaults)...)
	return keys
}

// JSONSchema returns the JSON schema of config.toml, for editor completion.
func (*SchemaProvider) JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/miniworld/config.schema.json"
	schema.Title = "miniworld configuration"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "default_webpage_zoom",
			Type:        "float64",
			Default:     fmt.Sprintf("%.1f", defaults.DefaultWebpageZoom),
			Description: "Zoom level for sites without a saved level (1.0 = 100%%)",
			Range:       fmt.Sprintf("%.2f-%.1f", entity.ZoomMin, entity.ZoomMax),
			Section:     SectionAppearance,
		},
		{
			Key:         "default_ui_scale",
			Type:        "float64",
			Default:     fmt.Sprintf("%.1f", defaults.DefaultUIScale),
			Description: "Scale applied to the default popup size",
			Range:       "0.5-4.0",
			Section:     SectionAppearance,
		},
		{
			Key:         "homepage",
			Type:        "string",
			Default:     defaults.Homepage,
			Description: "Homepage used until one is picked (empty = new tab page)",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.dark_palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "CLI color palette (background, surface, surface_variant, text, muted, accent, border)",
			Section:     SectionAppearance,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxAge),
			Description: "Maximum age of log files in days",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "(XDG state dir)/logs",
			Description: "Directory for log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.EnableFileLog),
			Description: "Also write logs to a rotated file",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "(XDG data dir)/" + databaseName,
			Description: "SQLite database for zoom levels, autofill entries and settings",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getPopupKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "popup.default_width",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Popup.DefaultWidth),
			Description: "Popup width when the page requests none (scaled by default_ui_scale)",
			Range:       ">=1",
			Section:     SectionPopup,
		},
		{
			Key:         "popup.default_height",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Popup.DefaultHeight),
			Description: "Popup height when the page requests none (scaled by default_ui_scale)",
			Range:       ">=1",
			Section:     SectionPopup,
		},
		{
			Key:         "popup.user_agent_token",
			Type:        "string",
			Default:     defaults.Popup.UserAgentToken,
			Description: "Token appended to the engine user agent in popups",
			Section:     SectionPopup,
		},
		{
			Key:         "popup.context_menus",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Popup.ContextMenus),
			Description: "Enable the engine's default context menus in popups",
			Section:     SectionPopup,
		},
	}
}

func (*SchemaProvider) getAutoCloseKeys(defaults *Config) []entity.ConfigKeyInfo {
	ac := defaults.Popup.AutoClose
	return []entity.ConfigKeyInfo{
		{
			Key:         "popup.auto_close.enabled",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", ac.Enabled),
			Description: "Close popups that land on an empty success/callback page",
			Section:     SectionAutoClose,
		},
		{
			Key:         "popup.auto_close.keywords",
			Type:        "[]string",
			Default:     strings.Join(ac.Keywords, ", "),
			Description: "URL substrings marking a completion page (case-insensitive)",
			Section:     SectionAutoClose,
		},
		{
			Key:         "popup.auto_close.blank_urls",
			Type:        "[]string",
			Default:     strings.Join(ac.BlankURLs, ", "),
			Description: "URLs that are always completion candidates",
			Section:     SectionAutoClose,
		},
		{
			Key:         "popup.auto_close.max_text_length",
			Type:        "int",
			Default:     fmt.Sprintf("%d", ac.MaxTextLength),
			Description: "Pages with less visible text than this are treated as empty",
			Range:       ">=1",
			Section:     SectionAutoClose,
		},
		{
			Key:         "popup.auto_close.delay",
			Type:        "duration",
			Default:     ac.Delay.String(),
			Description: "Wait before closing a completion page",
			Section:     SectionAutoClose,
		},
	}
}
