package entity

import "strings"

// ConfigKeyInfo documents one key of config.toml for `miniworld config schema`.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "popup.auto_close.delay".
	Key     string `json:"key"`
	Type    string `json:"type"`
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists the accepted values of string enums.
	Values []string `json:"values,omitempty"`
	// Range is a human-readable numeric bound such as ">=1" or "0.5-4.0".
	Range string `json:"range,omitempty"`

	Section string `json:"section"`
}

// Under reports whether the key is prefix itself or nested below it.
// Matching is per path segment: "popup" covers "popup.default_width" but
// not "popups.x". An empty prefix covers every key.
func (k ConfigKeyInfo) Under(prefix string) bool {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		return true
	}
	return k.Key == prefix || strings.HasPrefix(k.Key, prefix+".")
}

// EnvVar is the environment variable overriding the key:
// "popup.auto_close.delay" with prefix "MINIWORLD" gives
// MINIWORLD_POPUP_AUTO_CLOSE_DELAY.
func (k ConfigKeyInfo) EnvVar(prefix string) string {
	name := strings.ToUpper(strings.ReplaceAll(k.Key, ".", "_"))
	if prefix == "" {
		return name
	}
	return prefix + "_" + name
}
