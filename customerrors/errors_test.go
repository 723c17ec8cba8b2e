package customerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid symbol", ErrInvalidSymbol, http.StatusBadRequest},
		{"wrapped timeframe", fmt.Errorf("fetch bars: %w", ErrUnsupportedTimeframe), http.StatusBadRequest},
		{"missing parameter", ErrMissingParameter, http.StatusBadRequest},
		{"date range", ErrInvalidDateRange, http.StatusBadRequest},
		{"series", ErrInvalidSeriesData, http.StatusBadRequest},
		{"not found", fmt.Errorf("AAPL: %w", ErrDataNotFound), http.StatusNotFound},
		{"empty", ErrEmptyResponse, http.StatusNotFound},
		{"upstream", ErrApiRequest, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}
