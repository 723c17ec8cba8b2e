package util

import (
	"fmt"
	"strings"
	"time"
)

var (
	dateLayout    = "2006-01-02"
	displayLayout = "02 Jan 2006"
)

// ParseMarketDate accepts RFC 3339 or a plain YYYY-MM-DD date (UTC midnight).
func ParseMarketDate(value string) (time.Time, error) {
	clean := strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, clean); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, clean)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is neither RFC 3339 nor YYYY-MM-DD", value)
	}
	return t, nil
}

func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func FromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// FormatDisplayDate matches the chart tooltip format (dd MMM yyyy).
func FormatDisplayDate(ms int64) string {
	return FromEpochMillis(ms).Format(displayLayout)
}
