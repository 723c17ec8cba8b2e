package provider

import (
	"context"
	"fmt"
	"sync"

	"stockdock/customerrors"
	"stockdock/model"
)

// StaticProvider serves in-memory datasets keyed by symbol. The bundled AAPL
// sample is always present; more can be registered from CSV uploads.
type StaticProvider struct {
	mu       sync.RWMutex
	datasets map[string]*model.PriceHistoryChartData
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		datasets: map[string]*model.PriceHistoryChartData{
			samplePriceHistory.StockSymbol: samplePriceHistory.Clone(),
		},
	}
}

// SampleData returns a copy of the bundled dataset.
func SampleData() *model.PriceHistoryChartData {
	return samplePriceHistory.Clone()
}

func (s *StaticProvider) GetPriceHistory(_ context.Context, symbol string, _ model.TimeSpan) (*model.PriceHistoryChartData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.datasets[normalizeSymbol(symbol)]
	if !ok {
		return nil, fmt.Errorf("no static price history for %s: %w", symbol, customerrors.ErrDataNotFound)
	}
	return data.Clone(), nil
}

// Register stores a copy of data under its symbol, replacing any previous one.
func (s *StaticProvider) Register(data *model.PriceHistoryChartData) error {
	symbol := normalizeSymbol(data.StockSymbol)
	if symbol == "" {
		return fmt.Errorf("dataset has no symbol: %w", customerrors.ErrInvalidSymbol)
	}

	c := data.Clone()
	c.StockSymbol = symbol
	if len(c.TimeSpans) == 0 {
		c.TimeSpans = append([]string(nil), model.DefaultTimeSpans...)
	}

	s.mu.Lock()
	s.datasets[symbol] = c
	s.mu.Unlock()
	return nil
}

func (s *StaticProvider) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.datasets))
	for k := range s.datasets {
		out = append(out, k)
	}
	return out
}
