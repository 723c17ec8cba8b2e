package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"stockdock/customerrors"
	"stockdock/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleData(t *testing.T) {
	data := SampleData()

	assert.Equal(t, "Apple", data.StockName)
	assert.Equal(t, "AAPL", data.StockSymbol)
	assert.Equal(t, "USD", data.Currency)
	assert.Equal(t, []string{"1 Day", "1 Week", "1 Month", "1 Year", "5 Years"}, data.TimeSpans)
	require.Len(t, data.PriceHistory, 67)
	assert.Equal(t, model.PricePoint{Timestamp: 1746153600000, Price: 30.95}, data.PriceHistory[0])
	assert.Equal(t, model.PricePoint{Timestamp: 1754271600000, Price: 33.58}, data.PriceHistory[len(data.PriceHistory)-1])
	assert.Equal(t, 5.24, data.ChangeAmount)
	assert.Equal(t, 4.18, data.ChangePercentage)
}

func TestSampleDataIsChronological(t *testing.T) {
	data := SampleData()
	for i := 1; i < len(data.PriceHistory); i++ {
		assert.GreaterOrEqual(t, data.PriceHistory[i].Timestamp, data.PriceHistory[i-1].Timestamp)
	}
}

func TestStaticProviderReturnsCopies(t *testing.T) {
	p := NewStaticProvider()
	ctx := context.Background()

	first, err := p.GetPriceHistory(ctx, "aapl", model.Span1Day)
	require.NoError(t, err)
	first.PriceHistory[0].Price = 0
	first.TimeSpans[0] = "mutated"

	second, err := p.GetPriceHistory(ctx, "AAPL", model.Span5Years)
	require.NoError(t, err)
	assert.Equal(t, 30.95, second.PriceHistory[0].Price)
	assert.Equal(t, "1 Day", second.TimeSpans[0])
	assert.Equal(t, 30.95, SampleData().PriceHistory[0].Price)
}

func TestStaticProviderUnknownSymbol(t *testing.T) {
	_, err := NewStaticProvider().GetPriceHistory(context.Background(), "MSFT", model.Span1Day)
	assert.ErrorIs(t, err, customerrors.ErrDataNotFound)
}

func TestStaticProviderRegister(t *testing.T) {
	p := NewStaticProvider()
	require.NoError(t, p.Register(&model.PriceHistoryChartData{
		StockName:    "Microsoft",
		StockSymbol:  " msft ",
		Currency:     "USD",
		PriceHistory: []model.PricePoint{{Timestamp: 1, Price: 2}},
	}))

	data, err := p.GetPriceHistory(context.Background(), "MSFT", model.Span1Day)
	require.NoError(t, err)
	assert.Equal(t, "MSFT", data.StockSymbol)
	assert.Equal(t, model.DefaultTimeSpans, data.TimeSpans)
	assert.ElementsMatch(t, []string{"AAPL", "MSFT"}, p.Symbols())

	assert.ErrorIs(t, p.Register(&model.PriceHistoryChartData{}), customerrors.ErrInvalidSymbol)
}

type fakeBars struct {
	resp      *model.HistoricalBarsResponse
	err       error
	timeframe string
	start     string
	end       string
}

func (f *fakeBars) GetHistoricalBars(_ context.Context, _ string, timeframe, start, end string) (*model.HistoricalBarsResponse, error) {
	f.timeframe, f.start, f.end = timeframe, start, end
	return f.resp, f.err
}

func TestAlpacaProviderMapsBars(t *testing.T) {
	day := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	bars := &fakeBars{resp: &model.HistoricalBarsResponse{
		Symbol: "AAPL",
		Bars: []model.StockBar{
			{Timestamp: day, Close: 100},
			{Timestamp: day.AddDate(0, 0, 1), Close: 110},
		},
	}}
	p := NewAlpacaProvider(bars)
	p.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	data, err := p.GetPriceHistory(context.Background(), "aapl", model.Span1Year)
	require.NoError(t, err)

	assert.Equal(t, "1Week", bars.timeframe)
	assert.Equal(t, "2024-06-01T12:00:00Z", bars.start)
	assert.Equal(t, "2025-06-01T12:00:00Z", bars.end)

	assert.Equal(t, "AAPL", data.StockSymbol)
	assert.Equal(t, []model.PricePoint{
		{Timestamp: day.UnixMilli(), Price: 100},
		{Timestamp: day.AddDate(0, 0, 1).UnixMilli(), Price: 110},
	}, data.PriceHistory)
	assert.Equal(t, 10.0, data.ChangeAmount)
	assert.Equal(t, 10.0, data.ChangePercentage)
}

func TestAlpacaProviderUnknownSpanUsesMonth(t *testing.T) {
	bars := &fakeBars{resp: &model.HistoricalBarsResponse{Bars: []model.StockBar{{Close: 1}}}}
	p := NewAlpacaProvider(bars)

	_, err := p.GetPriceHistory(context.Background(), "AAPL", "")
	require.NoError(t, err)
	assert.Equal(t, "1Day", bars.timeframe)
}

func TestAlpacaProviderNoBars(t *testing.T) {
	p := NewAlpacaProvider(&fakeBars{resp: &model.HistoricalBarsResponse{}})
	_, err := p.GetPriceHistory(context.Background(), "AAPL", model.Span1Day)
	assert.ErrorIs(t, err, customerrors.ErrDataNotFound)

	_, err = p.GetPriceHistory(context.Background(), "  ", model.Span1Day)
	assert.ErrorIs(t, err, customerrors.ErrInvalidSymbol)
}

func TestFallbackProvider(t *testing.T) {
	upstream := errors.New("alpaca down")
	live := NewAlpacaProvider(&fakeBars{err: upstream})
	p := NewFallbackProvider(live, NewStaticProvider())

	data, err := p.GetPriceHistory(context.Background(), "AAPL", model.Span1Day)
	require.NoError(t, err)
	assert.Equal(t, "Apple", data.StockName)

	_, err = p.GetPriceHistory(context.Background(), "MSFT", model.Span1Day)
	assert.ErrorIs(t, err, upstream)
	assert.ErrorIs(t, err, customerrors.ErrDataNotFound)

	_, err = NewFallbackProvider().GetPriceHistory(context.Background(), "AAPL", model.Span1Day)
	assert.ErrorIs(t, err, customerrors.ErrDataNotFound)
}
