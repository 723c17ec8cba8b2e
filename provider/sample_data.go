package provider

import "stockdock/model"

// samplePriceHistory is the bundled AAPL dataset served when no live market
// data source is configured.
var samplePriceHistory = model.PriceHistoryChartData{
	StockName:   "Apple",
	StockSymbol: "AAPL",
	Currency:    "USD",
	TimeSpans: []string{
		string(model.Span1Day),
		string(model.Span1Week),
		string(model.Span1Month),
		string(model.Span1Year),
		string(model.Span5Years),
	},
	PriceHistory: []model.PricePoint{
		{Timestamp: 1746153600000, Price: 30.95},
		{Timestamp: 1746240000000, Price: 31.34},
		{Timestamp: 1746326400000, Price: 31.18},
		{Timestamp: 1746412800000, Price: 31.05},
		{Timestamp: 1746672000000, Price: 31.0},
		{Timestamp: 1746758400000, Price: 30.95},
		{Timestamp: 1746844800000, Price: 31.24},
		{Timestamp: 1746931200000, Price: 31.29},
		{Timestamp: 1747017600000, Price: 31.85},
		{Timestamp: 1747276800000, Price: 31.86},
		{Timestamp: 1747363200000, Price: 32.28},
		{Timestamp: 1747449600000, Price: 32.1},
		{Timestamp: 1747536000000, Price: 32.65},
		{Timestamp: 1747622400000, Price: 32.21},
		{Timestamp: 1747881600000, Price: 32.35},
		{Timestamp: 1747968000000, Price: 32.44},
		{Timestamp: 1748054400000, Price: 32.46},
		{Timestamp: 1748140800000, Price: 32.86},
		{Timestamp: 1748227200000, Price: 32.75},
		{Timestamp: 1748572800000, Price: 32.54},
		{Timestamp: 1748659200000, Price: 32.33},
		{Timestamp: 1748745600000, Price: 32.97},
		{Timestamp: 1748832000000, Price: 33.41},
		{Timestamp: 1749091200000, Price: 33.27},
		{Timestamp: 1749177600000, Price: 33.27},
		{Timestamp: 1749264000000, Price: 32.89},
		{Timestamp: 1749350400000, Price: 33.1},
		{Timestamp: 1749436800000, Price: 33.73},
		{Timestamp: 1749696000000, Price: 33.22},
		{Timestamp: 1749782400000, Price: 31.99},
		{Timestamp: 1749868800000, Price: 32.41},
		{Timestamp: 1749955200000, Price: 33.05},
		{Timestamp: 1750041600000, Price: 33.64},
		{Timestamp: 1750300800000, Price: 33.56},
		{Timestamp: 1750387200000, Price: 34.22},
		{Timestamp: 1750473600000, Price: 33.77},
		{Timestamp: 1750560000000, Price: 34.17},
		{Timestamp: 1750646400000, Price: 33.82},
		{Timestamp: 1750905600000, Price: 34.51},
		{Timestamp: 1750992000000, Price: 33.16},
		{Timestamp: 1751078400000, Price: 33.56},
		{Timestamp: 1751164800000, Price: 33.71},
		{Timestamp: 1751251200000, Price: 33.81},
		{Timestamp: 1751506800000, Price: 34.4},
		{Timestamp: 1751593200000, Price: 34.63},
		{Timestamp: 1751679600000, Price: 34.46},
		{Timestamp: 1751766000000, Price: 34.48},
		{Timestamp: 1751852400000, Price: 34.31},
		{Timestamp: 1752111600000, Price: 34.7},
		{Timestamp: 1752198000000, Price: 34.31},
		{Timestamp: 1752284400000, Price: 33.46},
		{Timestamp: 1752370800000, Price: 33.59},
		{Timestamp: 1752716400000, Price: 33.22},
		{Timestamp: 1752802800000, Price: 32.61},
		{Timestamp: 1752889200000, Price: 33.01},
		{Timestamp: 1752975600000, Price: 33.55},
		{Timestamp: 1753062000000, Price: 33.18},
		{Timestamp: 1753321200000, Price: 32.84},
		{Timestamp: 1753407600000, Price: 33.84},
		{Timestamp: 1753494000000, Price: 33.39},
		{Timestamp: 1753580400000, Price: 32.91},
		{Timestamp: 1753666800000, Price: 33.06},
		{Timestamp: 1753926000000, Price: 32.62},
		{Timestamp: 1754012400000, Price: 32.4},
		{Timestamp: 1754098800000, Price: 33.13},
		{Timestamp: 1754185200000, Price: 33.26},
		{Timestamp: 1754271600000, Price: 33.58},
	},
	ChangeAmount:     5.24,
	ChangePercentage: 4.18,
}
