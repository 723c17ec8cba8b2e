package util

import (
	"math"
	"strings"
	"testing"
	"time"

	"stockdock/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseMarketDate(t *testing.T) {
	d, err := ParseMarketDate("2025-01-08")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseMarketDate(" 2025-01-01T00:00:00Z ")
	require.NoError(t, err)
	assert.Equal(t, int64(1735689600000), EpochMillis(d))

	_, err = ParseMarketDate("08/01/2025")
	assert.Error(t, err)
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "02 May 2025", FormatDisplayDate(1746153600000))
}

func TestFormatCurrencyAndPercent(t *testing.T) {
	assert.Equal(t, "$1,279.95", FormatCurrency(1279.95, "USD"))
	assert.Equal(t, "$22,543.87", FormatCurrency(22543.87, ""))
	assert.Equal(t, "-€5.24", FormatCurrency(-5.24, "eur"))
	assert.Equal(t, "1.22%", FormatPercent(1.22))
	assert.Equal(t, "10.14%", FormatPercent(10.14))
}

func TestReadPriceHistory(t *testing.T) {
	input := "Timestamp,Price\n1746153600000,30.95\n2025-05-03,31.34\nbad,1\n1746326400000,x\n"

	points, err := ReadPriceHistory(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []model.PricePoint{
		{Timestamp: 1746153600000, Price: 30.95},
		{Timestamp: 1746230400000, Price: 31.34},
	}, points)
}

func TestReadPriceHistorySkipsNonFinitePrices(t *testing.T) {
	input := "timestamp,price\n1746153600000,30.95\n1746240000000,NaN\n1746326400000,Inf\n1746412800000,+Inf\n1746499200000,-inf\n1746585600000,31.5\n"

	points, err := ReadPriceHistory(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []model.PricePoint{
		{Timestamp: 1746153600000, Price: 30.95},
		{Timestamp: 1746585600000, Price: 31.5},
	}, points)
}

func TestReadPriceHistoryMissingColumns(t *testing.T) {
	_, err := ReadPriceHistory(strings.NewReader("date,close\n"))
	assert.Error(t, err)
}

func TestPriceHistoryWorkbook(t *testing.T) {
	data := &model.PriceHistoryChartData{
		StockSymbol: "AAPL",
		Currency:    "USD",
		PriceHistory: []model.PricePoint{
			{Timestamp: 1746153600000, Price: 30.95},
			{Timestamp: 1746240000000, Price: 31.34},
		},
	}

	buf, err := PriceHistoryWorkbook(data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("AAPL")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Timestamp", "Date", "Price (USD)"}, rows[0])
	assert.Equal(t, "2025-05-02", rows[1][1])
	assert.Equal(t, "31.34", rows[2][2])
}

func TestComputeChange(t *testing.T) {
	amount, pct := ComputeChange([]model.PricePoint{{Price: 30.95}, {Price: 31.5}, {Price: 33.58}})
	assert.Equal(t, 2.63, amount)
	assert.Equal(t, 8.5, pct)

	amount, pct = ComputeChange([]model.PricePoint{{Price: 10}})
	assert.Zero(t, amount)
	assert.Zero(t, pct)

	amount, pct = ComputeChange([]model.PricePoint{{Price: 0}, {Price: 2}})
	assert.Equal(t, 2.0, amount)
	assert.Zero(t, pct)
}

func TestComputeChangeNonFiniteEnds(t *testing.T) {
	tests := []struct {
		name   string
		points []model.PricePoint
	}{
		{"nan first", []model.PricePoint{{Price: math.NaN()}, {Price: 2}}},
		{"nan last", []model.PricePoint{{Price: 1}, {Price: math.NaN()}}},
		{"inf last", []model.PricePoint{{Price: 1}, {Price: math.Inf(1)}}},
		{"negative inf first", []model.PricePoint{{Price: math.Inf(-1)}, {Price: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var amount, pct float64
			require.NotPanics(t, func() { amount, pct = ComputeChange(tt.points) })
			assert.Zero(t, amount)
			assert.Zero(t, pct)
		})
	}
}
