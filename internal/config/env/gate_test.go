package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewGateConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
gate:
  public_paths:
    - /login
  skip_prefixes:
    - /assets/
  skip_suffixes:
    - .ico
`)

	cfg, err := NewGateConfigFromYAML(path)
	require.NoError(t, err)
	require.Equal(t, []string{"/login"}, cfg.PublicPaths())
	require.Equal(t, []string{"/assets/"}, cfg.SkipPrefixes())
	require.Equal(t, []string{".ico"}, cfg.SkipSuffixes())
}

func TestNewGateConfigFromYAML_Defaults(t *testing.T) {
	path := writeConfig(t, "gate: {}\n")

	cfg, err := NewGateConfigFromYAML(path)
	require.NoError(t, err)
	require.Contains(t, cfg.PublicPaths(), "/login")
	require.Contains(t, cfg.PublicPaths(), "/register")
	require.Contains(t, cfg.SkipPrefixes(), "/api/")
	require.NotEmpty(t, cfg.SkipSuffixes())
}

func TestNewGateConfigFromYAML_MissingFile(t *testing.T) {
	_, err := NewGateConfigFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
