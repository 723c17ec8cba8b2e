package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"stockdock/model"
)

const chartElementID = "chartThirteen"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	ElementID string
	Chart     *model.PriceHistoryChartResponse
	Snapshot  *model.StockSnapshotResponse
	Quotes    *model.StockQuotes
	Series    []model.Series
	Options   model.ChartOptions
}

func newPageData(page *model.DashboardPage) (pageData, error) {
	if page == nil || page.PriceHistory == nil {
		return pageData{}, fmt.Errorf("page has no price history")
	}
	return pageData{
		ElementID: chartElementID,
		Chart:     page.PriceHistory,
		Snapshot:  page.Snapshot,
		Quotes:    page.Quotes,
		Series:    page.PriceHistory.Series,
		Options:   page.PriceHistory.Options,
	}, nil
}

// RenderPriceHistoryCard writes the card markup alone. The span selector lists
// every time span in order and has no handler attached.
func RenderPriceHistoryCard(w io.Writer, chart *model.PriceHistoryChartResponse) error {
	data, err := newPageData(&model.DashboardPage{PriceHistory: chart})
	if err != nil {
		return err
	}
	return render(w, "price_history_card", data)
}

// RenderSingleStockPage writes the full dashboard page. Series and options are
// embedded as JSON for ApexCharts.
func RenderSingleStockPage(w io.Writer, page *model.DashboardPage) error {
	data, err := newPageData(page)
	if err != nil {
		return err
	}
	return render(w, "single_stock", data)
}

// render buffers the output so a failing template never writes a partial page.
func render(w io.Writer, name string, data pageData) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
