package model

import "time"

// StockQuote is the latest NBBO quote as returned by Alpaca.
type StockQuote struct {
	AskPrice    float64   `json:"ap" bson:"ap"`
	AskSize     int       `json:"as" bson:"as"`
	AskExchange string    `json:"ax" bson:"ax"`
	BidPrice    float64   `json:"bp" bson:"bp"`
	BidSize     int       `json:"bs" bson:"bs"`
	BidExchange string    `json:"bx" bson:"bx"`
	Conditions  []string  `json:"c" bson:"c"`
	Timestamp   time.Time `json:"t" bson:"t"`
	Tape        string    `json:"z" bson:"z"`
}

type StockQuotes struct {
	Currency string                `json:"currency"`
	Quotes   map[string]StockQuote `json:"quotes"`
}

type StockQuoteResponse struct {
	Symbol string      `json:"symbol"`
	Quote  *StockQuote `json:"quote"`
}

// StockBar is an aggregated OHLCV bar.
type StockBar struct {
	Close     float64   `json:"c"`
	High      float64   `json:"h"`
	Low       float64   `json:"l"`
	Trades    int64     `json:"n"`
	Open      float64   `json:"o"`
	Timestamp time.Time `json:"t"`
	Volume    int64     `json:"v"`
	Vwap      float64   `json:"vw"`
}

type StockTrade struct {
	Conditions []string  `json:"c"`
	ID         int64     `json:"i"`
	Price      float64   `json:"p"`
	Size       int       `json:"s"`
	Timestamp  time.Time `json:"t"`
	Exchange   string    `json:"x"`
	Tape       string    `json:"z"`
}

type StockSnapshotResponse struct {
	Symbol       string      `json:"symbol"`
	DailyBar     *StockBar   `json:"dailyBar"`
	PrevDailyBar *StockBar   `json:"prevDailyBar"`
	LatestQuote  *StockQuote `json:"latestQuote"`
	LatestTrade  *StockTrade `json:"latestTrade"`
	MinuteBar    *StockBar   `json:"minuteBar"`
}

type HistoricalBarsResponse struct {
	Symbol        string     `json:"symbol"`
	Bars          []StockBar `json:"bars"`
	NextPageToken *string    `json:"next_page_token,omitempty"`
}

// Timeframe is an Alpaca bar aggregation period.
type Timeframe string

const (
	Timeframe1Min   Timeframe = "1Min"
	Timeframe5Min   Timeframe = "5Min"
	Timeframe15Min  Timeframe = "15Min"
	Timeframe30Min  Timeframe = "30Min"
	Timeframe1Hour  Timeframe = "1Hour"
	Timeframe1Day   Timeframe = "1Day"
	Timeframe1Week  Timeframe = "1Week"
	Timeframe1Month Timeframe = "1Month"
)

var SupportedTimeframes = []string{
	string(Timeframe1Min),
	string(Timeframe5Min),
	string(Timeframe15Min),
	string(Timeframe30Min),
	string(Timeframe1Hour),
	string(Timeframe1Day),
	string(Timeframe1Week),
	string(Timeframe1Month),
}
