package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingDefaultFileYieldsDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, "dot", cfg.Render.Layout)
	require.Equal(t, "svg", cfg.Render.Format)
}

func TestLoadConfig_MissingExplicitFileFails(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadConfig_ReadsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphx.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render]\nlayout = \"circo\"\nformat = \"png\"\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "circo", cfg.Render.Layout)
	require.Equal(t, "png", cfg.Render.Format)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphx.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render]\nlayout = \"neato\"\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "neato", cfg.Render.Layout)
	require.Equal(t, "svg", cfg.Render.Format)
}

func TestLoadConfig_BrokenFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphx.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render\n"), 0o644))

	_, err := loadConfig(path)
	require.Error(t, err)
}
