package util

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders 1279.95 as "$1,279.95".
func FormatCurrency(amount float64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}
	return sign + currencySymbol(currency) + humanize.FormatFloat("#,###.##", amount)
}

// FormatPercent renders 1.22 as "1.22%".
func FormatPercent(pct float64) string {
	return humanize.FormatFloat("#,###.##", pct) + "%"
}

func currencySymbol(currency string) string {
	switch strings.ToUpper(currency) {
	case "", "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "INR":
		return "₹"
	default:
		return strings.ToUpper(currency) + " "
	}
}
