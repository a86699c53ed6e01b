package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetPopupDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 800, mgr.viper.GetInt("popup.default_width"))
	assert.Equal(t, 600, mgr.viper.GetInt("popup.default_height"))
	assert.Equal(t, "1.2s", mgr.viper.GetString("popup.auto_close.delay"))
	assert.True(t, mgr.viper.GetBool("popup.auto_close.enabled"))
}

func TestManager_Load_CreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", appName, "config.toml")
	assert.FileExists(t, configFile)
	assert.Equal(t, configFile, mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, 800, cfg.Popup.DefaultWidth)
	assert.Equal(t, 1200*time.Millisecond, cfg.Popup.AutoClose.Delay)
	assert.Equal(t, 20, cfg.Popup.AutoClose.MaxTextLength)
	assert.Contains(t, cfg.Popup.AutoClose.Keywords, "login_success")
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
}

func TestManager_Load_ReadsFileAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	content := `
[logging]
level = "DEBUG"
format = "JSON"

[popup]
default_width = 1024
user_agent_token = "  Edg/140.0.0.0 "

[popup.auto_close]
keywords = ["  Signed-In ", "signed-in", "DONE"]
delay = "500ms"
max_text_length = 40
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	isolateXDG(t)

	mgr, err := NewManager(file)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 1024, cfg.Popup.DefaultWidth)
	assert.Equal(t, 600, cfg.Popup.DefaultHeight)
	assert.Equal(t, "Edg/140.0.0.0", cfg.Popup.UserAgentToken)
	assert.Equal(t, []string{"signed-in", "done"}, cfg.Popup.AutoClose.Keywords)
	assert.Equal(t, 500*time.Millisecond, cfg.Popup.AutoClose.Delay)
	assert.Equal(t, 40, cfg.Popup.AutoClose.MaxTextLength)
}

func TestManager_Load_EnvOverride(t *testing.T) {
	isolateXDG(t)
	t.Setenv("MINIWORLD_POPUP_AUTO_CLOSE_DELAY", "2s")
	t.Setenv("MINIWORLD_LOG_LEVEL", "warn")

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 2*time.Second, cfg.Popup.AutoClose.Delay)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManager_Load_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(file, []byte("[popup]\ndefault_width = -1\n"), 0o600))
	isolateXDG(t)

	mgr, err := NewManager(file)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "popup.default_width")
}

func TestManager_Get_BeforeLoad(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestManager_Get_ReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Popup.DefaultWidth = 1

	assert.Equal(t, 800, mgr.Get().Popup.DefaultWidth)
}

func TestNormalizeList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, normalizeList([]string{" A", "", "b", "a "}))
	assert.Empty(t, normalizeList(nil))
}

func TestSchemaProvider_CoversPopupKeys(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	byKey := make(map[string]string, len(keys))
	for _, k := range keys {
		byKey[k.Key] = k.Default
	}
	assert.Equal(t, "800", byKey["popup.default_width"])
	assert.Equal(t, "1.2s", byKey["popup.auto_close.delay"])
	assert.Equal(t, "20", byKey["popup.auto_close.max_text_length"])
}

func TestSchemaProvider_JSONSchema(t *testing.T) {
	data, err := NewSchemaProvider().JSONSchema()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"auto_close"`)
	assert.Contains(t, string(data), `"max_text_length"`)
}
