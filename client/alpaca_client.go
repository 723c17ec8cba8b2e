package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"stockdock/customerrors"
	"stockdock/middleware"
	"stockdock/model"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

type AlpacaClient struct {
	client *resty.Client
}

func NewAlpacaClient(baseUrl, apiKey, apiSecret string) *AlpacaClient {
	c := resty.New().
		SetBaseURL(baseUrl).
		SetTimeout(15*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeaders(map[string]string{
			"APCA-API-KEY-ID":     apiKey,
			"APCA-API-SECRET-KEY": apiSecret,
			"Accept":              "application/json",
			"Accept-Encoding":     "br",
		})

	c.OnAfterResponse(middleware.DecompressMiddleware)

	return &AlpacaClient{client: c}
}

func (a *AlpacaClient) GetSingleQuoteBySymbol(ctx context.Context, symbol string) (*model.StockQuoteResponse, error) {
	var result model.StockQuoteResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		Get("/v2/stocks/{symbol}/quotes/latest")
	if err := decode(resp, err, "latest quote", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *AlpacaClient) GetAllQuotes(ctx context.Context, symbols []string) (*model.StockQuotes, error) {
	var result model.StockQuotes
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("symbols", strings.Join(symbols, ",")).
		Get("/v2/stocks/quotes/latest")
	if err := decode(resp, err, "latest quotes", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *AlpacaClient) GetStockSnapshot(ctx context.Context, symbol string) (*model.StockSnapshotResponse, error) {
	var result model.StockSnapshotResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		Get("/v2/stocks/{symbol}/snapshot")
	if err := decode(resp, err, "snapshot", &result); err != nil {
		return nil, err
	}
	if result.Symbol == "" {
		result.Symbol = symbol
	}
	return &result, nil
}

func (a *AlpacaClient) GetHistoricalBars(ctx context.Context, symbol, timeframe, start, end string) (*model.HistoricalBarsResponse, error) {
	var result model.HistoricalBarsResponse
	req := a.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"timeframe": timeframe,
			"start":     start,
			"end":       end,
		})

	log.Info().Str("symbol", symbol).Str("timeframe", timeframe).Str("start", start).Str("end", end).Msg("Calling Alpaca API for historical bars")

	resp, err := req.Get("/v2/stocks/{symbol}/bars")
	if err := decode(resp, err, "historical bars", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// decode runs after the decompress hook, so the body is parsed here rather
// than through resty's SetResult.
func decode(resp *resty.Response, err error, what string, target any) error {
	if err != nil {
		return fmt.Errorf("alpaca %s: %w: %v", what, customerrors.ErrApiRequest, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("alpaca %s: %w (status %d): %s", what, customerrors.ErrApiRequest, resp.StatusCode(), resp.String())
	}
	if err := json.Unmarshal(resp.Body(), target); err != nil {
		return fmt.Errorf("alpaca %s decode error: %w", what, err)
	}
	return nil
}
