package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	localCache "stockdock/cache"
	"stockdock/customerrors"
	"stockdock/model"
	"stockdock/util"
	"stockdock/validator"

	"github.com/jinzhu/copier"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// MarketDataClient is the market data API the stock service reads from.
type MarketDataClient interface {
	GetSingleQuoteBySymbol(ctx context.Context, symbol string) (*model.StockQuoteResponse, error)
	GetAllQuotes(ctx context.Context, symbols []string) (*model.StockQuotes, error)
	GetStockSnapshot(ctx context.Context, symbol string) (*model.StockSnapshotResponse, error)
	GetHistoricalBars(ctx context.Context, symbol, timeframe, start, end string) (*model.HistoricalBarsResponse, error)
}

// CurrentStockStore persists the latest quote per symbol.
type CurrentStockStore interface {
	Save(ctx context.Context, stock model.CurrentStock) error
}

type StockService interface {
	FetchAllQuotes(ctx context.Context) (*model.StockQuotes, error)
	FetchQuoteBySymbol(ctx context.Context, symbol string) (*model.StockQuote, error)
	FetchStockSnapshot(ctx context.Context, symbol string) (*model.StockSnapshotResponse, error)
	FetchHistoricalBars(ctx context.Context, query model.BarsQuery) (*model.HistoricalBarsResponse, error)
	FetchHistoricalTable(ctx context.Context, query model.BarsQuery) ([]model.HistoricalBar, error)
	SaveAllQuotesToDb(ctx context.Context) error
	PredefinedSymbols() []string
}

type StockServiceImpl struct {
	client  MarketDataClient
	store   CurrentStockStore
	symbols []string
}

func NewStockService(client MarketDataClient, store CurrentStockStore, symbols []string) StockService {
	return &StockServiceImpl{
		client:  client,
		store:   store,
		symbols: symbols,
	}
}

func (s *StockServiceImpl) PredefinedSymbols() []string {
	return append([]string(nil), s.symbols...)
}

// FetchAllQuotes returns the latest quotes of the predefined symbols. A blank
// currency in the upstream response defaults to USD.
func (s *StockServiceImpl) FetchAllQuotes(ctx context.Context) (*model.StockQuotes, error) {
	if cached, found := localCache.QuoteCache.Get("all"); found {
		return cached.(*model.StockQuotes), nil
	}

	log.Info().Msg("Fetching all stock quotes from Alpaca API.")

	quotes, err := s.client.GetAllQuotes(ctx, s.symbols)
	if err != nil {
		return nil, err
	}
	if quotes == nil {
		return nil, fmt.Errorf("response from API cannot be null: %w", customerrors.ErrEmptyResponse)
	}

	currency := quotes.Currency
	if strings.TrimSpace(currency) == "" {
		currency = "USD"
		log.Warn().Msg("Currency in the response was null or blank. Defaulting to USD.")
	}

	if len(quotes.Quotes) == 0 {
		return nil, fmt.Errorf("no quotes found for the predefined symbols: %w", customerrors.ErrInvalidSymbol)
	}

	log.Info().Int("count", len(quotes.Quotes)).Str("currency", currency).Msg("Successfully fetched quotes")

	result := &model.StockQuotes{Currency: currency, Quotes: quotes.Quotes}
	localCache.QuoteCache.Set("all", result, cache.DefaultExpiration)
	return result, nil
}

func (s *StockServiceImpl) FetchQuoteBySymbol(ctx context.Context, symbol string) (*model.StockQuote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol cannot be null or blank: %w", customerrors.ErrInvalidSymbol)
	}

	log.Info().Str("symbol", symbol).Msg("Fetching stock quote")

	resp, err := s.client.GetSingleQuoteBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.Quote == nil {
		return nil, fmt.Errorf("no stock quote found for symbol %s: %w", symbol, customerrors.ErrInvalidSymbol)
	}

	return resp.Quote, nil
}

func (s *StockServiceImpl) FetchStockSnapshot(ctx context.Context, symbol string) (*model.StockSnapshotResponse, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol cannot be null or blank: %w", customerrors.ErrInvalidSymbol)
	}

	if cached, found := localCache.SnapshotCache.Get(symbol); found {
		return cached.(*model.StockSnapshotResponse), nil
	}

	log.Info().Str("symbol", symbol).Msg("Fetching snapshot for stock")

	snapshot, err := s.client.GetStockSnapshot(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, fmt.Errorf("no snapshot data found for symbol %s: %w", symbol, customerrors.ErrInvalidSymbol)
	}

	localCache.SnapshotCache.Set(symbol, snapshot, cache.DefaultExpiration)
	return snapshot, nil
}

func (s *StockServiceImpl) FetchHistoricalBars(ctx context.Context, query model.BarsQuery) (*model.HistoricalBarsResponse, error) {
	if err := validator.ValidateBarsQuery(&query); err != nil {
		return nil, err
	}

	log.Info().
		Str("symbol", query.Symbol).
		Str("timeframe", query.Timeframe).
		Str("start", query.Start).
		Str("end", query.End).
		Msg("Fetching historical bars")

	resp, err := s.client.GetHistoricalBars(ctx, query.Symbol, query.Timeframe, query.Start, query.End)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Bars) == 0 {
		return nil, fmt.Errorf("no historical bars found for symbol %s: %w", query.Symbol, customerrors.ErrEmptyResponse)
	}

	return resp, nil
}

// FetchHistoricalTable flattens the bars for table widgets.
func (s *StockServiceImpl) FetchHistoricalTable(ctx context.Context, query model.BarsQuery) ([]model.HistoricalBar, error) {
	resp, err := s.FetchHistoricalBars(ctx, query)
	if err != nil {
		return nil, err
	}

	rows := make([]model.HistoricalBar, 0, len(resp.Bars))
	for _, bar := range resp.Bars {
		var row model.HistoricalBar
		if err := copier.Copy(&row, &bar); err != nil {
			return nil, fmt.Errorf("map bar: %w", err)
		}
		row.Date = util.FormatDate(bar.Timestamp)
		rows = append(rows, row)
	}
	return rows, nil
}

// SaveAllQuotesToDb upserts the latest quote of every predefined symbol.
func (s *StockServiceImpl) SaveAllQuotesToDb(ctx context.Context) error {
	if s.store == nil {
		return fmt.Errorf("no current stock store is configured")
	}
	localCache.QuoteCache.Delete("all")

	quotes, err := s.FetchAllQuotes(ctx)
	if err != nil {
		return err
	}

	log.Info().Int("count", len(quotes.Quotes)).Msg("Saving quotes to MongoDB")

	for symbol, quote := range quotes.Quotes {
		stock := model.CurrentStock{
			Symbol:      symbol,
			Currency:    quotes.Currency,
			LatestQuote: quote,
		}
		if err := s.store.Save(ctx, stock); err != nil {
			return fmt.Errorf("save quote %s: %w", symbol, err)
		}
	}

	log.Info().Time("at", time.Now()).Msg("All quotes have been successfully saved to MongoDB.")
	return nil
}
