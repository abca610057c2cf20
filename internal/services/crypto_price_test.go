package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeCoinGecko(t *testing.T, requests *int) *httptest.Server {
	t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasPrefix(r.URL.Path, "/simple/price"):
			ids := r.URL.Query().Get("ids")
			parts := make([]string, 0)
			for _, id := range strings.Split(ids, ",") {
				parts = append(parts, fmt.Sprintf(`"%s": {"usd": 65000.5, "usd_24h_change": -1.25}`, id))
			}
			fmt.Fprintf(w, "{%s}", strings.Join(parts, ","))
		case strings.Contains(r.URL.Path, "/market_chart"):
			fmt.Fprint(w, `{"prices": [[1704067200000, 42123.456], [1704153600000, 43000.789]]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestGetCurrentPrice(t *testing.T) {
	requests := 0
	server := newFakeCoinGecko(t, &requests)
	service := NewPriceService(server.URL)

	price, err := service.GetCurrentPrice("btc")
	require.NoError(t, err)
	assert.Equal(t, "BTC", price.Symbol)
	assert.Equal(t, 65000.5, price.PriceUSD)
	require.NotNil(t, price.Change24h)
	assert.Equal(t, -1.25, *price.Change24h)
}

func TestGetCurrentPriceUsesCache(t *testing.T) {
	requests := 0
	server := newFakeCoinGecko(t, &requests)
	service := NewPriceService(server.URL)

	_, err := service.GetCurrentPrice("BTC")
	require.NoError(t, err)
	_, err = service.GetCurrentPrice("BTC")
	require.NoError(t, err)

	// La segunda consulta sale del caché
	assert.Equal(t, 1, requests)
}

func TestGetCurrentPriceUnsupportedSymbol(t *testing.T) {
	service := NewPriceService("http://localhost:0")
	_, err := service.GetCurrentPrice("DOGE")
	assert.Error(t, err)
}

func TestGetMultiplePrices(t *testing.T) {
	requests := 0
	server := newFakeCoinGecko(t, &requests)
	service := NewPriceService(server.URL)

	prices, err := service.GetMultiplePrices([]string{"BTC", "eth", "NOPE"})
	require.NoError(t, err)

	// Los símbolos no soportados se ignoran y todo sale en una sola llamada
	require.Len(t, prices, 2)
	assert.Equal(t, "BTC", prices[0].Symbol)
	assert.Equal(t, "ETH", prices[1].Symbol)
	assert.Equal(t, 1, requests)
}

func TestGetPriceHistory(t *testing.T) {
	requests := 0
	server := newFakeCoinGecko(t, &requests)
	service := NewPriceService(server.URL)

	history, err := service.GetPriceHistory("BTC", 30)
	require.NoError(t, err)

	require.Len(t, history, 2)
	assert.Equal(t, "2024-01-01", history[0].Date)
	assert.Equal(t, 42123.46, history[0].PriceUSD)
	assert.Equal(t, "2024-01-02", history[1].Date)
}
