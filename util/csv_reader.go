package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"stockdock/model"
)

// ReadPriceHistory parses a CSV with `timestamp` (epoch ms or a date) and
// `price` columns. Rows that do not parse, or carry a non-finite price, are
// skipped.
func ReadPriceHistory(r io.Reader) ([]model.PricePoint, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerMap := make(map[string]int)
	for i, name := range header {
		headerMap[strings.ToLower(strings.TrimSpace(name))] = i
	}

	tsIdx, hasTs := headerMap["timestamp"]
	priceIdx, hasPrice := headerMap["price"]
	if !hasTs || !hasPrice {
		return nil, fmt.Errorf("missing required columns: timestamp or price")
	}

	points := make([]model.PricePoint, 0, 64)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv record: %w", err)
		}

		ts, ok := parseTimestamp(record[tsIdx])
		if !ok {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(record[priceIdx]), 64)
		if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
			continue
		}

		points = append(points, model.PricePoint{Timestamp: ts, Price: price})
	}

	return points, nil
}

func parseTimestamp(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ms, true
	}
	t, err := ParseMarketDate(raw)
	if err != nil {
		return 0, false
	}
	return EpochMillis(t), true
}
