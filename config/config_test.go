package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
optimize:
  algorithm: matching
  per_service: true
  turnaround_overrides:
    Touringcar: 10
metrics:
  prometheus_enabled: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "matching", cfg.Optimize.Algorithm)
	require.True(t, cfg.Optimize.PerService)
	require.Equal(t, 10, cfg.Optimize.TurnaroundOverrides["Touringcar"])
	require.Equal(t, "service", cfg.Optimize.TurnaroundScope, "default applied")
	require.Equal(t, ":2112", cfg.Metrics.PrometheusPort, "default applied")
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"optimize": {"algorithm": "greedy"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "greedy", cfg.Optimize.Algorithm)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("OMLOOP_OPTIMIZE__ALGORITHM", "greedy")
	path := writeConfig(t, "config.yaml", `
optimize:
  algorithm: mincost
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "greedy", cfg.Optimize.Algorithm)
}

func TestLoadRejectsUnknownAlgorithm(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
optimize:
  algorithm: simplex
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsOverrideBelowFloor(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
optimize:
  turnaround_overrides:
    Taxibus: 1
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "config.toml", "")
	_, err := Load(path)
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "mincost", cfg.Optimize.Algorithm)
	require.NoError(t, cfg.Optimize.Validate())
}
