package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docsify-tools/internal/errors"
)

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "docsify.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("site:\n  title: My Docs\n"), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "My Docs", cfg.Site.Title)
	require.Equal(t, "./docs", cfg.Docs)
	require.Equal(t, "vue", cfg.Site.Theme)
	require.Equal(t, "./docs/api", cfg.API.Output)
	require.Equal(t, 3000, cfg.Serve.Port)
	require.True(t, cfg.Serve.LiveReloadEnabled())
}

func TestLoad_MissingFileIsConfigError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var de *derrors.DocsifyError
	require.ErrorAs(t, err, &de)
	require.Equal(t, derrors.CategoryConfig, de.Category)
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("DOCS_ROOT", "/srv/docs")
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "docsify.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("docs: ${DOCS_ROOT}\n"), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "/srv/docs", cfg.Docs)
}

func TestLoad_LiveReloadCanBeDisabled(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "docsify.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("serve:\n  live_reload: false\n"), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.False(t, cfg.Serve.LiveReloadEnabled())
}

func TestLoadOrDefault_FallsBackWhenMissing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "./docs", cfg.Docs)
}

func TestInit_WritesLoadableStarterConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "docsify.yaml")

	require.NoError(t, Init(cfgPath, false))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "./docs", cfg.Docs)
	require.Equal(t, "Documentation", cfg.Site.Title)
}

func TestInit_RefusesOverwriteWithoutForce(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "docsify.yaml")
	require.NoError(t, Init(cfgPath, false))

	err := Init(cfgPath, false)
	require.Error(t, err)

	require.NoError(t, Init(cfgPath, true))
}
