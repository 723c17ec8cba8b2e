package config

import (
	"fmt"
	"os"
	"strings"

	"stockdock/model"

	"gopkg.in/yaml.v3"
)

var defaultSymbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}

// LoadSymbols reads the predefined symbol list. A missing path or file
// falls back to the built-in list.
func LoadSymbols(path string) (*model.SymbolConfig, error) {
	cfg := &model.SymbolConfig{Predefined: defaultSymbols}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read symbols file: %w", err)
	}

	var file model.SymbolsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse symbols file: %w", err)
	}

	symbols := make([]string, 0, len(file.Symbols.Predefined))
	for _, s := range file.Symbols.Predefined {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			symbols = append(symbols, s)
		}
	}
	if len(symbols) > 0 {
		cfg.Predefined = symbols
	}
	return cfg, nil
}
