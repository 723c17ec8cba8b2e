package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	localCache "stockdock/cache"
	"stockdock/config"
	"stockdock/customerrors"
	"stockdock/model"
	"stockdock/provider"
	"stockdock/util"

	"github.com/rs/zerolog/log"
)

type ChartService interface {
	GetPriceHistoryChart(ctx context.Context, symbol, span string) (*model.PriceHistoryChartResponse, error)
	GetSeries(ctx context.Context, symbol, span string) ([]model.Series, error)
	GetPriceHistoryData(ctx context.Context, symbol, span string) (*model.PriceHistoryChartData, error)
	LoadFromCsv(ctx context.Context, meta model.PriceHistoryChartData, fileName string, file io.Reader) error
}

// DatasetRegistry accepts uploaded price histories.
type DatasetRegistry interface {
	Register(data *model.PriceHistoryChartData) error
}

type ChartServiceImpl struct {
	provider provider.PriceHistoryProvider
	registry DatasetRegistry
	cfg      *config.ConfigManager
}

func NewChartService(p provider.PriceHistoryProvider, registry DatasetRegistry, cfg *config.ConfigManager) ChartService {
	return &ChartServiceImpl{
		provider: p,
		registry: registry,
		cfg:      cfg,
	}
}

func (s *ChartServiceImpl) GetPriceHistoryChart(ctx context.Context, symbol, span string) (*model.PriceHistoryChartResponse, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	span = s.resolveSpan(span)

	cacheKey := localCache.ChartKey(symbol, span)
	var cached model.PriceHistoryChartResponse
	if ok, err := localCache.GetChartResponseCache(cacheKey, &cached); ok && err == nil {
		return &cached, nil
	}

	data, err := s.GetPriceHistoryData(ctx, symbol, span)
	if err != nil {
		return nil, err
	}

	resp := BuildPriceHistoryChart(data, span, s.cfg.GetConfig().Metrics)
	if resp.Warning != "" {
		log.Warn().Str("symbol", symbol).Str("span", span).Msg(resp.Warning)
	}
	if resp.ChangeDrift {
		log.Debug().
			Str("symbol", symbol).
			Float64("stored", data.ChangeAmount).
			Float64("computed", resp.ComputedChange).
			Msg("stored change differs from price history")
	}

	if ttl := s.cacheTtl(); ttl > 0 {
		localCache.SetChartResponseCache(cacheKey, *resp, ttl)
	}
	return resp, nil
}

func (s *ChartServiceImpl) GetSeries(ctx context.Context, symbol, span string) ([]model.Series, error) {
	data, err := s.GetPriceHistoryData(ctx, symbol, s.resolveSpan(span))
	if err != nil {
		return nil, err
	}
	return []model.Series{BuildSeries(data)}, nil
}

func (s *ChartServiceImpl) GetPriceHistoryData(ctx context.Context, symbol, span string) (*model.PriceHistoryChartData, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol cannot be null or blank: %w", customerrors.ErrInvalidSymbol)
	}

	data, err := s.provider.GetPriceHistory(ctx, symbol, model.TimeSpan(s.resolveSpan(span)))
	if err != nil {
		return nil, fmt.Errorf("price history for %s: %w", symbol, err)
	}
	return data, nil
}

// LoadFromCsv registers an uploaded price history under meta's symbol and
// drops its cached charts.
func (s *ChartServiceImpl) LoadFromCsv(ctx context.Context, meta model.PriceHistoryChartData, fileName string, file io.Reader) error {
	if file == nil {
		return fmt.Errorf("file is empty: %w", customerrors.ErrMissingParameter)
	}
	if filepath.Ext(fileName) != ".csv" {
		return fmt.Errorf("invalid file type %q, must be .csv: %w", fileName, customerrors.ErrMissingParameter)
	}

	points, err := util.ReadPriceHistory(file)
	if err != nil {
		return fmt.Errorf("csv parsing failed: %w", err)
	}

	meta.StockSymbol = strings.ToUpper(strings.TrimSpace(meta.StockSymbol))
	if meta.StockName == "" {
		meta.StockName = meta.StockSymbol
	}
	if meta.Currency == "" {
		meta.Currency = "USD"
	}
	meta.PriceHistory = points
	meta.ChangeAmount, meta.ChangePercentage = util.ComputeChange(points)

	if err := s.registry.Register(&meta); err != nil {
		return err
	}

	localCache.InvalidateChart(meta.StockSymbol, model.DefaultTimeSpans)
	log.Info().Str("symbol", meta.StockSymbol).Int("points", len(points)).Msg("CSV price history loaded")
	return nil
}

// resolveSpan maps span onto one of model.DefaultTimeSpans, ignoring case.
// Anything else resolves to the configured default, so cache keys stay
// within the spans InvalidateChart clears.
func (s *ChartServiceImpl) resolveSpan(span string) string {
	if known, ok := knownSpan(span); ok {
		return known
	}
	if known, ok := knownSpan(s.cfg.GetConfig().DefaultTimeSpan); ok {
		return known
	}
	return string(model.Span1Month)
}

func knownSpan(span string) (string, bool) {
	span = strings.TrimSpace(span)
	for _, known := range model.DefaultTimeSpans {
		if strings.EqualFold(span, known) {
			return known, true
		}
	}
	return "", false
}

func (s *ChartServiceImpl) cacheTtl() time.Duration {
	return time.Duration(s.cfg.GetConfig().ChartCacheTtl) * time.Second
}
