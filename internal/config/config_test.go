package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "warn", cfg.General.LogLevel)
	require.Equal(t, "text", cfg.General.LogFormat)
	require.Equal(t, TraversalRPN, cfg.Output.Traversal)
	require.Equal(t, TreeFormatYAML, cfg.Output.TreeFormat)
	require.False(t, cfg.Parser.AllowTrailing)
	require.False(t, cfg.Parser.LenientClose)
	require.NoError(t, cfg.Validate())
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "calc.toml", `
[general]
log_level = "debug"

[parser]
allow_trailing = true

[output]
traversal = "original"
color = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.General.LogLevel)
	require.Equal(t, "text", cfg.General.LogFormat)
	require.True(t, cfg.Parser.AllowTrailing)
	require.False(t, cfg.Parser.LenientClose)
	require.Equal(t, TraversalOriginal, cfg.Output.Traversal)
	require.Equal(t, TreeFormatYAML, cfg.Output.TreeFormat)
	require.True(t, cfg.Output.Color)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "calc.yaml", `
general:
  log_format: json
parser:
  lenient_close: true
output:
  traversal: eval
  tree_format: repr
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "json", cfg.General.LogFormat)
	require.True(t, cfg.Parser.LenientClose)
	require.Equal(t, TraversalEval, cfg.Output.Traversal)
	require.Equal(t, TreeFormatRepr, cfg.Output.TreeFormat)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "config file not found")

	_, err = Load(writeFile(t, "bad.toml", "[output\n"))
	require.ErrorContains(t, err, "failed to parse config")

	_, err = Load(writeFile(t, "bad.toml", "[output]\ntraversal = \"infix\"\n"))
	require.ErrorContains(t, err, `invalid output.traversal "infix"`)

	_, err = Load(writeFile(t, "bad.yml", "output:\n  tree_format: xml\n"))
	require.ErrorContains(t, err, `invalid output.tree_format "xml"`)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "env.toml", "[output]\ntraversal = \"eval\"\n")
	t.Setenv("CALC_CONFIG", path)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	require.Equal(t, TraversalEval, cfg.Output.Traversal)
}

func TestLoadFromEnv_FallsBackToDefault(t *testing.T) {
	t.Setenv("CALC_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}
