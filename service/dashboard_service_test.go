package service

import (
	"context"
	"errors"
	"testing"

	"stockdock/customerrors"
	"stockdock/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSingleStockPageWithoutMarketData(t *testing.T) {
	chartSvc, _, _ := newTestChartService(0)
	svc := NewDashboardService(chartSvc, nil)

	page, err := svc.GetSingleStockPage(context.Background(), "AAPL", "1 Day")

	require.NoError(t, err)
	require.NotNil(t, page.PriceHistory)
	assert.Equal(t, "AAPL", page.PriceHistory.StockSymbol)
	assert.Nil(t, page.Snapshot)
	assert.Nil(t, page.Quotes)
}

func TestGetSingleStockPageWidgetsAreBestEffort(t *testing.T) {
	resetStockCaches()
	chartSvc, _, _ := newTestChartService(0)
	stockSvc := NewStockService(&fakeMarketData{err: errors.New("upstream down")}, &fakeStore{}, []string{"AAPL"})
	svc := NewDashboardService(chartSvc, stockSvc)

	page, err := svc.GetSingleStockPage(context.Background(), "AAPL", "")

	require.NoError(t, err)
	assert.NotNil(t, page.PriceHistory)
	assert.Nil(t, page.Snapshot)
	assert.Nil(t, page.Quotes)
}

func TestGetSingleStockPageWithWidgets(t *testing.T) {
	resetStockCaches()
	chartSvc, _, _ := newTestChartService(0)
	client := &fakeMarketData{
		snapshot: &model.StockSnapshotResponse{Symbol: "AAPL"},
		quotes:   &model.StockQuotes{Currency: "USD", Quotes: map[string]model.StockQuote{"AAPL": {AskPrice: 1}}},
	}
	svc := NewDashboardService(chartSvc, NewStockService(client, &fakeStore{}, []string{"AAPL"}))

	page, err := svc.GetSingleStockPage(context.Background(), "aapl", "")

	require.NoError(t, err)
	require.NotNil(t, page.Snapshot)
	assert.Equal(t, "AAPL", page.Snapshot.Symbol)
	require.NotNil(t, page.Quotes)
	assert.Contains(t, page.Quotes.Quotes, "AAPL")
}

func TestGetSingleStockPageChartFailure(t *testing.T) {
	chartSvc, _, _ := newTestChartService(0)
	svc := NewDashboardService(chartSvc, nil)

	_, err := svc.GetSingleStockPage(context.Background(), "UNKNOWN", "")

	assert.ErrorIs(t, err, customerrors.ErrDataNotFound)
}
