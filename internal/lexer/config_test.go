package lexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_OverlaysOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loxo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extraIdentChars: \"@$\"\ntabWidth: 4\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "@$", cfg.ExtraIdentChars)
	assert.Equal(t, 4, cfg.TabWidth)
}

func TestLoadConfig_MissingTabWidthDefaultsToEight(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loxo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extraIdentChars: \"#\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.TabWidth)
}

func TestLoadConfig_MissingFileErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
