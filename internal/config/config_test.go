package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"data": "profile.yaml",
		"output_dir": "./out",
		"label": "acme",
		"verbose": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "profile.yaml", cfg.Data)
	assert.Equal(t, "./out", cfg.OutputDir)
	assert.Equal(t, "acme", cfg.Label)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.NoHiddenText)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestConfig_Validate(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("identity:\n  name: Jane\n"), 0o644))

	t.Run("existing data file passes", func(t *testing.T) {
		cfg := &Config{Data: existing}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing data file fails", func(t *testing.T) {
		cfg := &Config{Data: filepath.Join(dir, "absent.yaml")}
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty data skips the check", func(t *testing.T) {
		cfg := &Config{}
		assert.NoError(t, cfg.Validate())
	})
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	base := Config{Label: "acme", Verbose: true}
	defaults := Config{
		Data:      "profile.yaml",
		OutputDir: "./out",
		Label:     "ignored",
	}

	merged := base.MergeWithDefaults(defaults)
	assert.Equal(t, "profile.yaml", merged.Data)
	assert.Equal(t, "./out", merged.OutputDir)
	assert.Equal(t, "acme", merged.Label, "explicit value wins over default")
	assert.True(t, merged.Verbose)
}
