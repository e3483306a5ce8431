package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.HasSettings())
}

func TestLoad_ReadsSettings(t *testing.T) {
	dir := t.TempDir()
	content := "log_level = \"debug\"\nlog_format = \"json\"\nquiet = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte(content), 0600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.HasSettings())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.Quiet)
}

func TestLoad_PartialSettingsKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte("quiet = true\n"), 0600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
}

func TestLoad_MalformedSettings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFile), []byte("log_level = \n"), 0600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), SettingsFile)
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", AppName), DefaultConfigDir())
}
