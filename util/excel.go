package util

import (
	"bytes"
	"fmt"

	"stockdock/model"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// PriceHistoryWorkbook writes the price history of data into a single-sheet
// xlsx document named after the stock symbol.
func PriceHistoryWorkbook(data *model.PriceHistoryChartData) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := data.StockSymbol
	if sheet == "" {
		sheet = defaultSheet
	}
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"Timestamp", "Date", "Price (" + data.Currency + ")"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, p := range data.PriceHistory {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{p.Timestamp, FormatDate(FromEpochMillis(p.Timestamp)), p.Price}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.WriteToBuffer()
}
