package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUserAgent(t *testing.T) {
	const engine = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/605.1.15"

	tests := []struct {
		name     string
		engineUA string
		token    string
		want     string
	}{
		{"appends token", engine, DefaultUserAgentToken, engine + " MiniWorld/1.0"},
		{"no token keeps native", engine, "  ", engine},
		{"empty native", "", DefaultUserAgentToken, DefaultUserAgentToken},
		{"not appended twice", engine + " MiniWorld/1.0", DefaultUserAgentToken, engine + " MiniWorld/1.0"},
		{"trims whitespace", engine + "  ", " Shell/2 ", engine + " Shell/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildUserAgent(tt.engineUA, tt.token))
		})
	}
}
