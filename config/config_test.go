package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plume.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Address)
	require.Equal(t, "system", cfg.Scheme)
	require.Equal(t, "Plume UI", cfg.Title)
	require.Empty(t, cfg.DataDir)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	require.Equal(t, Default().Address, cfg.Address)
}

func TestLoadValidFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
address: "127.0.0.1:9000"
data_dir: "./data"
scheme: dark
title: "Acme Components"
verbose: true
admin:
  username: curator
  password: gallery-keys
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.Address)
	require.Equal(t, "./data", cfg.DataDir)
	require.Equal(t, "dark", cfg.Scheme)
	require.Equal(t, "Acme Components", cfg.Title)
	require.True(t, cfg.Verbose)
	require.Equal(t, "curator", cfg.Admin.Username)
}

func TestLoadPartialFileGetsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `scheme: light`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "light", cfg.Scheme)
	require.Equal(t, ":8080", cfg.Address)
	require.Equal(t, "Plume UI", cfg.Title)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "address: [not, a, string\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateScheme(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `scheme: sepia`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Scheme")
}

func TestValidateAdminPairing(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "admin:\n  username: curator\n"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "admin:\n  password: gallery-keys\n"))
	require.Error(t, err)
}

func TestValidateAdminName(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "admin:\n  username: \"bad name!\"\n  password: gallery-keys\n"))
	require.Error(t, err)
}

func TestValidateShortPassword(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "admin:\n  username: curator\n  password: tiny\n"))
	require.Error(t, err)
}
