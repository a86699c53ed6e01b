package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigKeyInfo_Under(t *testing.T) {
	key := ConfigKeyInfo{Key: "popup.auto_close.delay"}

	assert.True(t, key.Under(""))
	assert.True(t, key.Under("popup"))
	assert.True(t, key.Under("popup.auto_close."))
	assert.True(t, key.Under("popup.auto_close.delay"))
	assert.False(t, key.Under("popup.auto"))
	assert.False(t, key.Under("logging"))
}

func TestConfigKeyInfo_EnvVar(t *testing.T) {
	key := ConfigKeyInfo{Key: "popup.auto_close.max_text_length"}

	assert.Equal(t, "MINIWORLD_POPUP_AUTO_CLOSE_MAX_TEXT_LENGTH", key.EnvVar("MINIWORLD"))
	assert.Equal(t, "POPUP_AUTO_CLOSE_MAX_TEXT_LENGTH", key.EnvVar(""))
}
