package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backups(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), LogFileName+".") {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestFileRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewFileRotator(RotatorConfig{Dir: dir, MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)
	defer r.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	chunk := []byte(strings.Repeat("x", 700<<10))
	for range 5 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	assert.Len(t, backups(t, dir), 2)
	info, err := os.Stat(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestFileRotator_Compress(t *testing.T) {
	dir := t.TempDir()
	r, err := NewFileRotator(RotatorConfig{Dir: dir, MaxSizeMB: 1, Compress: true})
	require.NoError(t, err)
	defer r.Close()

	chunk := []byte(strings.Repeat("y", 600<<10))
	for range 2 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	names := backups(t, dir)
	require.Len(t, names, 1)
	assert.True(t, strings.HasSuffix(names[0], ".gz"))
}

func TestNewWithFile_WritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	logger, closer, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "json", Output: &strings.Builder{}},
		RotatorConfig{Dir: dir},
	)
	require.NoError(t, err)

	logger.Info().Str("popup_id", "01J").Msg("popup closed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"popup_id":"01J"`)
}
