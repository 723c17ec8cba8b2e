package service

import (
	"context"

	"stockdock/model"

	"github.com/rs/zerolog/log"
)

type DashboardService interface {
	GetSingleStockPage(ctx context.Context, symbol, span string) (*model.DashboardPage, error)
}

type DashboardServiceImpl struct {
	chartSvc ChartService
	stockSvc StockService
}

// NewDashboardService composes the single stock page. stockSvc may be nil
// when no market data API is configured; the sibling widgets then stay empty.
func NewDashboardService(chartSvc ChartService, stockSvc StockService) DashboardService {
	return &DashboardServiceImpl{
		chartSvc: chartSvc,
		stockSvc: stockSvc,
	}
}

// GetSingleStockPage fails only when the price history card cannot be built.
func (s *DashboardServiceImpl) GetSingleStockPage(ctx context.Context, symbol, span string) (*model.DashboardPage, error) {
	chart, err := s.chartSvc.GetPriceHistoryChart(ctx, symbol, span)
	if err != nil {
		return nil, err
	}

	page := &model.DashboardPage{PriceHistory: chart}
	if s.stockSvc == nil {
		return page, nil
	}

	snapshot, err := s.stockSvc.FetchStockSnapshot(ctx, chart.StockSymbol)
	if err != nil {
		log.Warn().Err(err).Str("symbol", chart.StockSymbol).Msg("snapshot widget unavailable")
	} else {
		page.Snapshot = snapshot
	}

	quotes, err := s.stockSvc.FetchAllQuotes(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("quote table widget unavailable")
	} else {
		page.Quotes = quotes
	}

	return page, nil
}
