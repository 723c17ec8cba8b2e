package customerrors

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidSymbol        = errors.New("invalid symbol")
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrUnsupportedTimeframe = errors.New("unsupported timeframe")
	ErrMissingParameter     = errors.New("missing required parameter")
	ErrDataNotFound         = errors.New("data not found")
	ErrEmptyResponse        = errors.New("empty response")
	ErrApiRequest           = errors.New("api request failed")
	ErrInvalidSeriesData    = errors.New("invalid series data")
)

// StatusFor maps a service error to the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidSymbol),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrUnsupportedTimeframe),
		errors.Is(err, ErrMissingParameter),
		errors.Is(err, ErrInvalidSeriesData):
		return http.StatusBadRequest
	case errors.Is(err, ErrDataNotFound), errors.Is(err, ErrEmptyResponse):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
