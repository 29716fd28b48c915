package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/padd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2*time.Minute, cfg.Display.RefreshTTL)
	assert.Equal(t, 20*time.Second, cfg.Display.RotateInterval)
	assert.Equal(t, 300*time.Millisecond, cfg.Buttons.Debounce)
	assert.Equal(t, 5*time.Second, cfg.Buttons.Hold)
	assert.True(t, cfg.Update.Enabled)
	assert.Empty(t, cfg.Pihole.Address)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
pihole:
  address: 192.168.1.5
  api_token: abc123
  https: true
display:
  rotate_interval: 30s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.5", cfg.Pihole.Address)
	assert.Equal(t, "abc123", cfg.Pihole.APIToken)
	assert.True(t, cfg.Pihole.HTTPS)
	// Overridden value
	assert.Equal(t, 30*time.Second, cfg.Display.RotateInterval)
	// Defaults still merged
	assert.Equal(t, 2*time.Minute, cfg.Display.RefreshTTL)
	assert.Equal(t, 5*time.Second, cfg.Buttons.Hold)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "pihole: [not: a map")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadOrDefault_Env(t *testing.T) {
	t.Setenv("PIHOLE_ADDRESS", "10.0.0.2")
	t.Setenv("PIHOLE_API_TOKEN", "tok")

	// Run from an empty directory so no local config is found
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2", cfg.Pihole.Address)
	assert.Equal(t, "tok", cfg.Pihole.APIToken)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	cfg.Pihole.Address = "pi.hole"
	err = cfg.Validate()
	require.Error(t, err) // still missing token

	cfg.Pihole.APIToken = "secret"
	require.NoError(t, cfg.Validate())

	cfg.Display.RotateInterval = 0
	assert.Error(t, cfg.Validate())
}

func TestAdminURL(t *testing.T) {
	cfg := PiholeConfig{Address: "192.168.1.5"}
	assert.Equal(t, "http://192.168.1.5/admin/", cfg.AdminURL())

	cfg.HTTPS = true
	assert.Equal(t, "https://192.168.1.5/admin/", cfg.AdminURL())
}

func TestFind_Explicit(t *testing.T) {
	path := writeConfig(t, "pihole:\n  address: x\n")

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = Find(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
