// Package provider sources the price history shown on the chart card.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stockdock/customerrors"
	"stockdock/model"

	"github.com/rs/zerolog/log"
)

// PriceHistoryProvider returns the chart data of one symbol for a time span.
// Implementations return a value the caller owns.
type PriceHistoryProvider interface {
	GetPriceHistory(ctx context.Context, symbol string, span model.TimeSpan) (*model.PriceHistoryChartData, error)
}

// FallbackProvider asks each provider in order and returns the first hit.
type FallbackProvider struct {
	providers []PriceHistoryProvider
}

func NewFallbackProvider(providers ...PriceHistoryProvider) *FallbackProvider {
	return &FallbackProvider{providers: providers}
}

func (f *FallbackProvider) GetPriceHistory(ctx context.Context, symbol string, span model.TimeSpan) (*model.PriceHistoryChartData, error) {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("symbol cannot be blank: %w", customerrors.ErrInvalidSymbol)
	}

	var errs []error
	for _, p := range f.providers {
		data, err := p.GetPriceHistory(ctx, symbol, span)
		if err == nil {
			return data, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Debug().Err(err).Str("symbol", symbol).Str("provider", fmt.Sprintf("%T", p)).Msg("price history provider miss")
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil, fmt.Errorf("no price history provider for %s: %w", symbol, customerrors.ErrDataNotFound)
	}
	return nil, errors.Join(errs...)
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
