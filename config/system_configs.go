package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"stockdock/model"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

type SystemConfigs struct {
	Config  *model.EnvConfig
	Symbols *model.SymbolConfig
	Runtime *ConfigManager
}

func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	rawJson := os.Getenv("config")
	if rawJson == "" {
		return nil, fmt.Errorf("environment variable 'config' is empty or not set")
	}

	envCfg, err := ParseEnvConfig(rawJson)
	if err != nil {
		return nil, err
	}

	symbols, err := LoadSymbols(envCfg.SymbolsFile)
	if err != nil {
		return nil, err
	}

	return &SystemConfigs{
		Config:  envCfg,
		Symbols: symbols,
		Runtime: NewConfigManager(DefaultRuntimeConfig()),
	}, nil
}

func ParseEnvConfig(rawJson string) (*model.EnvConfig, error) {
	var envCfg model.EnvConfig
	if err := json.Unmarshal([]byte(rawJson), &envCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if envCfg.Port == "" {
		envCfg.Port = "8080"
	}
	if envCfg.MongoDatabase == "" {
		envCfg.MongoDatabase = "stockdock"
	}
	if envCfg.AlpacaBaseUrl == "" {
		envCfg.AlpacaBaseUrl = "https://data.alpaca.markets"
	}
	if len(envCfg.FrontendUrls) == 0 {
		envCfg.FrontendUrls = []string{"http://localhost:5173"}
	}
	return &envCfg, nil
}

func DefaultRuntimeConfig() *model.RuntimeConfig {
	return &model.RuntimeConfig{
		RateLimiter:     true,
		ChartCacheTtl:   60,
		DefaultTimeSpan: string(model.Span1Month),
		Metrics: []model.MetricBlock{
			{Label: "Invested Value", Amount: 1279.95, Percentage: 1.22},
			{Label: "Total Returns", Amount: 22543.87, Percentage: 10.14},
		},
	}
}

type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.RuntimeConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.RuntimeConfig {
	return cm.value.Load().(*model.RuntimeConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.RuntimeConfig) {
	cm.value.Store(newCfg)
}

// Patch decodes a partial update over a copy of the active config and swaps it in.
func (cm *ConfigManager) Patch(changes map[string]any) (*model.RuntimeConfig, error) {
	next := *cm.GetConfig()
	next.Metrics = append([]model.MetricBlock(nil), next.Metrics...)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &next,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		ZeroFields:       true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(changes); err != nil {
		return nil, fmt.Errorf("invalid runtime config: %w", err)
	}

	cm.UpdateConfig(&next)
	return &next, nil
}
