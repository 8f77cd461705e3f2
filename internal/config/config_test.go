package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "https://demo.koha-community.org", cfg.BaseURL)
	require.Equal(t, "v1", cfg.APIVersion)
	require.Equal(t, "amber", cfg.Theme)
	require.Equal(t, "PUBLIC LIBRARY", cfg.LibraryName)
	require.Equal(t, 10, cfg.ItemsPerPage)
	require.Equal(t, "both", cfg.CallNumberDisplay)
	require.Equal(t, 30, cfg.RequestTimeout)
}

func TestAPIURLs(t *testing.T) {
	cfg := Default()
	cfg.BaseURL = "https://koha.example.org/"

	require.Equal(t, "https://koha.example.org/api/v1/public", cfg.PublicAPIURL())
	require.Equal(t, "https://koha.example.org/api/v1", cfg.StaffAPIURL())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.BaseURL = "https://library.example.org"
	cfg.Theme = "green"
	cfg.ItemsPerPage = 25
	require.NoError(t, cfg.Save())

	// Credentials demand owner-only access.
	info, err := os.Stat(Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "opacterm")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{broken"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "opacterm")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"theme": "blue"}`), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "blue", cfg.Theme)
	// Unspecified fields keep their defaults.
	require.Equal(t, 10, cfg.ItemsPerPage)
	require.Equal(t, "v1", cfg.APIVersion)
}
