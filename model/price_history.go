package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// TimeSpan is a selectable historical range label.
type TimeSpan string

const (
	Span1Day   TimeSpan = "1 Day"
	Span1Week  TimeSpan = "1 Week"
	Span1Month TimeSpan = "1 Month"
	Span1Year  TimeSpan = "1 Year"
	Span5Years TimeSpan = "5 Years"
)

// DefaultTimeSpans lists the selector options in display order.
var DefaultTimeSpans = []string{
	string(Span1Day),
	string(Span1Week),
	string(Span1Month),
	string(Span1Year),
	string(Span5Years),
}

// PricePoint is one sample of the price history.
type PricePoint struct {
	// Timestamp in epoch milliseconds.
	Timestamp int64   `json:"timestamp" bson:"timestamp"`
	Price     float64 `json:"price" bson:"price"`
}

// PriceHistoryChartData is everything the price history card needs.
// ChangeAmount and ChangePercentage are stored values; nothing keeps them
// in sync with PriceHistory.
type PriceHistoryChartData struct {
	StockName        string       `json:"stockName" bson:"stockName"`
	StockSymbol      string       `json:"stockSymbol" bson:"_id"`
	Currency         string       `json:"currency" bson:"currency"`
	TimeSpans        []string     `json:"timeSpans" bson:"timeSpans"`
	PriceHistory     []PricePoint `json:"priceHistory" bson:"priceHistory"`
	ChangeAmount     float64      `json:"changeAmount" bson:"changeAmount"`
	ChangePercentage float64      `json:"changePercentage" bson:"changePercentage"`
}

// Clone returns a deep copy.
func (d *PriceHistoryChartData) Clone() *PriceHistoryChartData {
	if d == nil {
		return nil
	}
	c := *d
	c.TimeSpans = append([]string(nil), d.TimeSpans...)
	c.PriceHistory = append([]PricePoint(nil), d.PriceHistory...)
	return &c
}

// SeriesPoint is encoded as the [timestamp, price] tuple ApexCharts expects.
// A non-finite price is written as null, which the chart draws as a gap.
type SeriesPoint struct {
	Timestamp int64
	Price     float64
}

func (p SeriesPoint) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 32)
	b = append(b, '[')
	b = strconv.AppendInt(b, p.Timestamp, 10)
	b = append(b, ',')
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		b = append(b, "null"...)
	} else {
		b = strconv.AppendFloat(b, p.Price, 'f', -1, 64)
	}
	b = append(b, ']')
	return b, nil
}

func (p *SeriesPoint) UnmarshalJSON(data []byte) error {
	var raw []json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("series point must have 2 elements, got %d", len(raw))
	}
	ts, err := raw[0].Int64()
	if err != nil {
		return fmt.Errorf("series point timestamp: %w", err)
	}
	price := math.NaN()
	if raw[1] != "" {
		if price, err = raw[1].Float64(); err != nil {
			return fmt.Errorf("series point price: %w", err)
		}
	}
	p.Timestamp, p.Price = ts, price
	return nil
}

// Series is one named line of the chart.
type Series struct {
	Name string        `json:"name"`
	Data []SeriesPoint `json:"data"`
}

// MetricBlock is one of the summary figures shown above the chart.
type MetricBlock struct {
	Label      string  `json:"label" mapstructure:"label"`
	Amount     float64 `json:"amount" mapstructure:"amount"`
	Percentage float64 `json:"percentage" mapstructure:"percentage"`
	Value      string  `json:"value" mapstructure:"-"`
	Change     string  `json:"change" mapstructure:"-"`
}

// PriceHistoryChartResponse is the payload of the price history card.
type PriceHistoryChartResponse struct {
	StockName        string        `json:"stockName"`
	StockSymbol      string        `json:"stockSymbol"`
	Currency         string        `json:"currency"`
	TimeSpans        []string      `json:"timeSpans"`
	SelectedSpan     string        `json:"selectedSpan"`
	Series           []Series      `json:"series"`
	Options          ChartOptions  `json:"options"`
	Metrics          []MetricBlock `json:"metrics"`
	ChangeAmount     float64       `json:"changeAmount"`
	ChangePercentage float64       `json:"changePercentage"`
	ComputedChange   float64       `json:"computedChange"`
	ComputedPercent  float64       `json:"computedChangePercentage"`
	ChangeDrift      bool          `json:"changeDrift"`
	Empty            bool          `json:"empty"`
	Warning          string        `json:"warning,omitempty"`
}

// --- Huma Structs ---

type ChartInput struct {
	Symbol string `path:"symbol" doc:"Stock Symbol" example:"AAPL"`
	Span   string `query:"span" doc:"Time span label" example:"1 Month" enum:"1 Day,1 Week,1 Month,1 Year,5 Years"`
}

type PriceHistoryChartOutput struct {
	Body PriceHistoryChartResponse
}

type SeriesOutput struct {
	Body []Series
}

type ChartOptionsOutput struct {
	Body ChartOptions
}
