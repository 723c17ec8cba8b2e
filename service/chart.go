package service

import (
	"fmt"
	"math"

	"stockdock/customerrors"
	"stockdock/model"
	"stockdock/util"
)

const seriesName = "Price"

// BuildSeries maps the price history onto [timestamp, price] tuples in input
// order. A nil or empty history gives a series with an empty data array.
func BuildSeries(data *model.PriceHistoryChartData) model.Series {
	series := model.Series{Name: seriesName, Data: []model.SeriesPoint{}}
	if data == nil {
		return series
	}

	series.Data = make([]model.SeriesPoint, len(data.PriceHistory))
	for i, p := range data.PriceHistory {
		series.Data[i] = model.SeriesPoint{Timestamp: p.Timestamp, Price: p.Price}
	}
	return series
}

// ValidateSeries reports data the chart cannot plot meaningfully. Callers
// still render the series; the error only describes why it may look empty.
func ValidateSeries(series model.Series) error {
	if len(series.Data) == 0 {
		return fmt.Errorf("series %q has no points: %w", series.Name, customerrors.ErrInvalidSeriesData)
	}
	for i, p := range series.Data {
		if p.Timestamp <= 0 {
			return fmt.Errorf("point %d has timestamp %d: %w", i, p.Timestamp, customerrors.ErrInvalidSeriesData)
		}
		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return fmt.Errorf("point %d has a non-finite price: %w", i, customerrors.ErrInvalidSeriesData)
		}
		if i > 0 && p.Timestamp < series.Data[i-1].Timestamp {
			return fmt.Errorf("point %d is out of chronological order: %w", i, customerrors.ErrInvalidSeriesData)
		}
	}
	return nil
}

// DefaultChartOptions is the fixed ApexCharts configuration of the price
// history area chart.
func DefaultChartOptions() model.ChartOptions {
	return model.ChartOptions{
		Colors: []string{"#3C50E0"},
		Chart: model.ChartConfig{
			FontFamily: "Satoshi, sans-serif",
			Height:     310,
			ID:         "area-datetime",
			Type:       "area",
			Toolbar:    model.Visibility{Show: false},
		},
		Legend: model.LegendConfig{
			Show:            false,
			Position:        "top",
			HorizontalAlign: "left",
		},
		Stroke: model.StrokeConfig{
			Curve: "straight",
			Width: []int{1, 1},
		},
		DataLabels: model.Toggle{Enabled: false},
		Markers:    model.MarkersConfig{Size: 0},
		Labels:     model.LabelsConfig{Show: false, Position: "top"},
		XAxis: model.XAxisConfig{
			Type:       "datetime",
			TickAmount: 10,
			AxisBorder: model.Visibility{Show: false},
			AxisTicks:  model.Visibility{Show: false},
		},
		Tooltip: model.TooltipConfig{X: model.TooltipX{Format: "dd MMM yyyy"}},
		Fill: model.FillConfig{
			Gradient: model.GradientConfig{Enabled: true, OpacityFrom: 0.55, OpacityTo: 0},
		},
		Grid: model.GridConfig{
			StrokeDashArray: 7,
			XAxis:           model.GridLines{Lines: model.Visibility{Show: true}},
			YAxis:           model.GridLines{Lines: model.Visibility{Show: true}},
		},
		Responsive: []model.ResponsiveOption{
			{Breakpoint: 1024, Options: model.ResponsiveOptions{Chart: model.ResponsiveChart{Height: 300}}},
			{Breakpoint: 1366, Options: model.ResponsiveOptions{Chart: model.ResponsiveChart{Height: 320}}},
		},
	}
}

// FormatMetrics fills the display strings of the metric blocks.
func FormatMetrics(metrics []model.MetricBlock, currency string) []model.MetricBlock {
	out := make([]model.MetricBlock, len(metrics))
	for i, m := range metrics {
		m.Value = util.FormatCurrency(m.Amount, currency)
		m.Change = util.FormatPercent(m.Percentage)
		out[i] = m
	}
	return out
}

// BuildPriceHistoryChart assembles the card payload. The stored change
// figures are passed through untouched; the figures computed from the price
// history sit next to them and ChangeDrift flags a mismatch.
func BuildPriceHistoryChart(data *model.PriceHistoryChartData, span string, metrics []model.MetricBlock) *model.PriceHistoryChartResponse {
	if data == nil {
		data = &model.PriceHistoryChartData{}
	}
	series := BuildSeries(data)
	amount, pct := util.ComputeChange(data.PriceHistory)

	resp := &model.PriceHistoryChartResponse{
		StockName:        data.StockName,
		StockSymbol:      data.StockSymbol,
		Currency:         data.Currency,
		TimeSpans:        append([]string(nil), data.TimeSpans...),
		SelectedSpan:     span,
		Series:           []model.Series{series},
		Options:          DefaultChartOptions(),
		Metrics:          FormatMetrics(metrics, data.Currency),
		ChangeAmount:     data.ChangeAmount,
		ChangePercentage: data.ChangePercentage,
		ComputedChange:   amount,
		ComputedPercent:  pct,
	}
	resp.ChangeDrift = len(data.PriceHistory) > 1 && (amount != data.ChangeAmount || pct != data.ChangePercentage)

	if err := ValidateSeries(series); err != nil {
		resp.Empty = !hasPlottablePoint(series)
		resp.Warning = err.Error()
	}
	return resp
}

func hasPlottablePoint(series model.Series) bool {
	for _, p := range series.Data {
		if p.Timestamp > 0 && !math.IsNaN(p.Price) && !math.IsInf(p.Price, 0) {
			return true
		}
	}
	return false
}
