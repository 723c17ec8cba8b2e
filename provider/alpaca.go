package provider

import (
	"context"
	"fmt"
	"time"

	"stockdock/customerrors"
	"stockdock/model"
	"stockdock/util"
)

// BarsFetcher is the slice of the market data client this provider needs.
type BarsFetcher interface {
	GetHistoricalBars(ctx context.Context, symbol, timeframe, start, end string) (*model.HistoricalBarsResponse, error)
}

type spanWindow struct {
	timeframe model.Timeframe
	lookback  func(time.Time) time.Time
}

var spanWindows = map[model.TimeSpan]spanWindow{
	model.Span1Day:   {model.Timeframe1Hour, func(t time.Time) time.Time { return t.AddDate(0, 0, -1) }},
	model.Span1Week:  {model.Timeframe1Day, func(t time.Time) time.Time { return t.AddDate(0, 0, -7) }},
	model.Span1Month: {model.Timeframe1Day, func(t time.Time) time.Time { return t.AddDate(0, -1, 0) }},
	model.Span1Year:  {model.Timeframe1Week, func(t time.Time) time.Time { return t.AddDate(-1, 0, 0) }},
	model.Span5Years: {model.Timeframe1Month, func(t time.Time) time.Time { return t.AddDate(-5, 0, 0) }},
}

// AlpacaProvider builds chart data from Alpaca historical bars, one point per
// bar close.
type AlpacaProvider struct {
	client   BarsFetcher
	currency string
	now      func() time.Time
}

func NewAlpacaProvider(client BarsFetcher) *AlpacaProvider {
	return &AlpacaProvider{client: client, currency: "USD", now: time.Now}
}

func (p *AlpacaProvider) GetPriceHistory(ctx context.Context, symbol string, span model.TimeSpan) (*model.PriceHistoryChartData, error) {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("symbol cannot be blank: %w", customerrors.ErrInvalidSymbol)
	}

	window, ok := spanWindows[span]
	if !ok {
		window = spanWindows[model.Span1Month]
	}

	end := p.now().UTC()
	start := window.lookback(end)

	resp, err := p.client.GetHistoricalBars(ctx, symbol, string(window.timeframe), start.Format(time.RFC3339), end.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Bars) == 0 {
		return nil, fmt.Errorf("no bars for %s: %w", symbol, customerrors.ErrDataNotFound)
	}

	points := make([]model.PricePoint, 0, len(resp.Bars))
	for _, bar := range resp.Bars {
		points = append(points, model.PricePoint{
			Timestamp: util.EpochMillis(bar.Timestamp),
			Price:     bar.Close,
		})
	}

	amount, pct := util.ComputeChange(points)
	return &model.PriceHistoryChartData{
		StockName:        symbol,
		StockSymbol:      symbol,
		Currency:         p.currency,
		TimeSpans:        append([]string(nil), model.DefaultTimeSpans...),
		PriceHistory:     points,
		ChangeAmount:     amount,
		ChangePercentage: pct,
	}, nil
}
