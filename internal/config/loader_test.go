package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
project_root = "/games/order-of-the-stone"
python = "python3.11"
owner = "DCX-dev"
repo = "Order-of-the-stone"
verbose = true
no_color = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, loadedFrom, err := NewLoader(path, nil).Load()
	require.NoError(t, err)

	assert.Equal(t, path, loadedFrom)
	require.NotNil(t, cfg.ProjectRoot)
	assert.Equal(t, "/games/order-of-the-stone", *cfg.ProjectRoot)
	require.NotNil(t, cfg.Python)
	assert.Equal(t, "python3.11", *cfg.Python)
	require.NotNil(t, cfg.Verbose)
	assert.True(t, *cfg.Verbose)
	require.NotNil(t, cfg.NoColor)
	assert.False(t, *cfg.NoColor)
	assert.Nil(t, cfg.JSON, "unset keys must stay nil")
	assert.False(t, cfg.IsEmpty())
}

func TestLoadMissingExplicitPathIsAnError(t *testing.T) {
	_, _, err := NewLoader(filepath.Join(t.TempDir(), "absent.toml"), nil).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadWithoutConfigFileIsNotAnError(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, loadedFrom, err := NewLoader("", nil).Load()
	require.NoError(t, err)
	assert.Empty(t, loadedFrom)
	assert.True(t, cfg.IsEmpty())
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("project_root = [broken"), 0644))

	_, _, err := NewLoader(path, nil).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
