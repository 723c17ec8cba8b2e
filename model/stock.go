package model

// CurrentStock is the persisted latest quote of one symbol.
type CurrentStock struct {
	Symbol      string     `bson:"_id" json:"symbol"`
	Currency    string     `bson:"currency" json:"currency"`
	LatestQuote StockQuote `bson:"latestQuote" json:"latestQuote"`
}

// HistoricalBar is the flattened bar shape served to the dashboard tables.
type HistoricalBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	Close  float64 `json:"close"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume int64   `json:"volume"`
}

// BarsQuery holds the raw query of the historical bars endpoint.
type BarsQuery struct {
	Symbol    string `form:"-"`
	Timeframe string `form:"timeframe"`
	Start     string `form:"start"`
	End       string `form:"end"`
}

// DashboardPage is the single stock page: the price history card plus its
// sibling widgets.
type DashboardPage struct {
	PriceHistory *PriceHistoryChartResponse `json:"priceHistory"`
	Snapshot     *StockSnapshotResponse     `json:"snapshot,omitempty"`
	Quotes       *StockQuotes               `json:"quotes,omitempty"`
}

// --- Huma Structs ---

type DashboardOutput struct {
	Body DashboardPage
}

type SymbolsOutput struct {
	Body SymbolConfig
}
