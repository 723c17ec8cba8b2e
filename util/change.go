package util

import (
	"math"

	"stockdock/model"

	"github.com/shopspring/decimal"
)

// ComputeChange returns the absolute and percentage change between the first
// and last point, rounded to two places. Fewer than two points, or a zero
// first price for the percentage, yield zero. So does a non-finite first or
// last price.
func ComputeChange(points []model.PricePoint) (float64, float64) {
	if len(points) < 2 {
		return 0, 0
	}
	firstPrice, lastPrice := points[0].Price, points[len(points)-1].Price
	if !isFinite(firstPrice) || !isFinite(lastPrice) {
		return 0, 0
	}

	first := decimal.NewFromFloat(firstPrice)
	last := decimal.NewFromFloat(lastPrice)
	diff := last.Sub(first)

	amount, _ := diff.Round(2).Float64()
	if first.IsZero() {
		return amount, 0
	}
	pct, _ := diff.Div(first).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return amount, pct
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
