package client

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockdock/customerrors"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brotliBody(t *testing.T, body string) []byte {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, err := w.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func newUpstream(t *testing.T, handler http.HandlerFunc) *AlpacaClient {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAlpacaClient(srv.URL, "key", "secret")
}

func TestGetSingleQuoteBySymbol(t *testing.T) {
	client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/stocks/AAPL/quotes/latest", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("APCA-API-KEY-ID"))
		assert.Equal(t, "secret", r.Header.Get("APCA-API-SECRET-KEY"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"symbol":"AAPL","quote":{"ap":190.5,"bp":190.1,"t":"2025-01-02T15:04:05Z"}}`))
	})

	resp, err := client.GetSingleQuoteBySymbol(context.Background(), "AAPL")

	require.NoError(t, err)
	assert.Equal(t, "AAPL", resp.Symbol)
	require.NotNil(t, resp.Quote)
	assert.Equal(t, 190.5, resp.Quote.AskPrice)
}

func TestGetAllQuotesBrotli(t *testing.T) {
	client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/stocks/quotes/latest", r.URL.Path)
		assert.Equal(t, "AAPL,MSFT", r.URL.Query().Get("symbols"))
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", "br")
		w.Write(brotliBody(t, `{"quotes":{"AAPL":{"ap":1},"MSFT":{"ap":2}}}`))
	})

	resp, err := client.GetAllQuotes(context.Background(), []string{"AAPL", "MSFT"})

	require.NoError(t, err)
	assert.Len(t, resp.Quotes, 2)
	assert.Equal(t, 2.0, resp.Quotes["MSFT"].AskPrice)
}

func TestGetStockSnapshotFillsSymbol(t *testing.T) {
	client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dailyBar":{"o":1,"c":2}}`))
	})

	resp, err := client.GetStockSnapshot(context.Background(), "AAPL")

	require.NoError(t, err)
	assert.Equal(t, "AAPL", resp.Symbol)
	require.NotNil(t, resp.DailyBar)
	assert.Equal(t, 2.0, resp.DailyBar.Close)
}

func TestGetHistoricalBars(t *testing.T) {
	client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/stocks/AAPL/bars", r.URL.Path)
		assert.Equal(t, "1Day", r.URL.Query().Get("timeframe"))
		assert.Equal(t, "2025-01-01", r.URL.Query().Get("start"))
		assert.Equal(t, "2025-02-01", r.URL.Query().Get("end"))
		w.Write([]byte(`{"symbol":"AAPL","bars":[{"c":10,"t":"2025-01-02T05:00:00Z"}]}`))
	})

	resp, err := client.GetHistoricalBars(context.Background(), "AAPL", "1Day", "2025-01-01", "2025-02-01")

	require.NoError(t, err)
	require.Len(t, resp.Bars, 1)
	assert.Equal(t, 10.0, resp.Bars[0].Close)
}

func TestUpstreamErrorIsApiRequest(t *testing.T) {
	client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"forbidden"}`))
	})

	_, err := client.GetSingleQuoteBySymbol(context.Background(), "AAPL")

	assert.ErrorIs(t, err, customerrors.ErrApiRequest)
}
