package config

import (
	"os"
	"path/filepath"
	"testing"

	"stockdock/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvConfigDefaults(t *testing.T) {
	cfg, err := ParseEnvConfig(`{"environment":"production","alpacaKey":"k","alpacaSecret":"s"}`)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "stockdock", cfg.MongoDatabase)
	assert.Equal(t, "https://data.alpaca.markets", cfg.AlpacaBaseUrl)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.HasAlpaca())
}

func TestParseEnvConfigInvalidJson(t *testing.T) {
	_, err := ParseEnvConfig(`{port:`)
	assert.Error(t, err)
}

func TestLoadSymbols(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "symbols.yaml")
	require.NoError(t, os.WriteFile(path, []byte("symbols:\n  predefined:\n    - aapl\n    - ' nvda '\n    - ''\n"), 0o644))

	cfg, err := LoadSymbols(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "NVDA"}, cfg.Predefined)
}

func TestLoadSymbolsMissingFileFallsBack(t *testing.T) {
	cfg, err := LoadSymbols(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultSymbols, cfg.Predefined)
}

func TestLoadSymbolsBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symbols.yaml")
	require.NoError(t, os.WriteFile(path, []byte("symbols: [::"), 0o644))

	_, err := LoadSymbols(path)
	assert.Error(t, err)
}

func TestConfigManagerPatch(t *testing.T) {
	cm := NewConfigManager(DefaultRuntimeConfig())

	next, err := cm.Patch(map[string]any{
		"debug":                true,
		"chartCacheTtlSeconds": "30",
		"metrics": []map[string]any{
			{"label": "Invested Value", "amount": 10.5, "percentage": 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, next.DebugMode)
	assert.Equal(t, 30, next.ChartCacheTtl)
	assert.Equal(t, []model.MetricBlock{{Label: "Invested Value", Amount: 10.5, Percentage: 1}}, next.Metrics)
	assert.Same(t, next, cm.GetConfig())
}

func TestConfigManagerPatchRejectsUnknownKeys(t *testing.T) {
	cm := NewConfigManager(DefaultRuntimeConfig())
	before := cm.GetConfig()

	_, err := cm.Patch(map[string]any{"leverage": 4})
	assert.Error(t, err)
	assert.Same(t, before, cm.GetConfig())
}
