package services

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// coinIDs mapea los símbolos soportados a los IDs que usa CoinGecko
var coinIDs = map[string]string{
	"BTC": "bitcoin",
	"ETH": "ethereum",
	"SOL": "solana",
	"TRX": "tron",
}

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// Precios en caché por 5 minutos para no agotar el límite de la API gratuita
const cacheTTL = 5 * time.Minute

// PriceData es el precio actual de una moneda
type PriceData struct {
	Symbol    string   `json:"symbol"`
	PriceUSD  float64  `json:"price_usd"`
	Change24h *float64 `json:"change_24h,omitempty"`
}

// PricePoint es un punto del historial de precios
type PricePoint struct {
	Date     string  `json:"date"`
	PriceUSD float64 `json:"price_usd"`
}

type cachedPrice struct {
	data      PriceData
	fetchedAt time.Time
}

// PriceService consulta precios de criptomonedas contra CoinGecko
type PriceService struct {
	baseURL string
	client  *http.Client

	mu    sync.Mutex
	cache map[string]cachedPrice
}

// NewPriceService crea el servicio de precios. Con baseURL vacío usa la
// API pública de CoinGecko.
func NewPriceService(baseURL string) *PriceService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &PriceService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   make(map[string]cachedPrice),
	}
}

func (s *PriceService) cachedPriceFor(symbol string) (PriceData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cache[symbol]
	if !ok || time.Since(entry.fetchedAt) > cacheTTL {
		return PriceData{}, false
	}
	return entry.data, true
}

func (s *PriceService) storePrice(symbol string, data PriceData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[symbol] = cachedPrice{data: data, fetchedAt: time.Now()}
}

// fetchPrices consulta el precio actual de varios IDs en una sola llamada
func (s *PriceService) fetchPrices(ids []string) (map[string]map[string]float64, error) {
	endpoint := fmt.Sprintf(
		"%s/simple/price?ids=%s&vs_currencies=usd&include_24hr_change=true",
		s.baseURL, url.QueryEscape(strings.Join(ids, ",")),
	)

	resp, err := s.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("error consultando precios: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("la API de precios respondió %d", resp.StatusCode)
	}

	var payload map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decodificando precios: %w", err)
	}
	return payload, nil
}

// GetCurrentPrice obtiene el precio actual de una moneda, usando el caché
// si el dato todavía está fresco
func (s *PriceService) GetCurrentPrice(symbol string) (*PriceData, error) {
	symbol = strings.ToUpper(symbol)
	coinID, ok := coinIDs[symbol]
	if !ok {
		return nil, fmt.Errorf("moneda no soportada: %s", symbol)
	}

	if data, ok := s.cachedPriceFor(symbol); ok {
		return &data, nil
	}

	payload, err := s.fetchPrices([]string{coinID})
	if err != nil {
		return nil, err
	}

	raw, ok := payload[coinID]
	if !ok {
		return nil, fmt.Errorf("la API no devolvió precio para %s", symbol)
	}

	data := PriceData{Symbol: symbol, PriceUSD: raw["usd"]}
	if change, ok := raw["usd_24h_change"]; ok {
		c := change
		data.Change24h = &c
	}

	s.storePrice(symbol, data)
	return &data, nil
}

// GetMultiplePrices obtiene los precios de varias monedas en una sola
// llamada a la API. Los símbolos no soportados se ignoran.
func (s *PriceService) GetMultiplePrices(symbols []string) ([]PriceData, error) {
	ids := make([]string, 0, len(symbols))
	valid := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if coinID, ok := coinIDs[symbol]; ok {
			ids = append(ids, coinID)
			valid = append(valid, symbol)
		}
	}
	if len(ids) == 0 {
		return []PriceData{}, nil
	}

	payload, err := s.fetchPrices(ids)
	if err != nil {
		return nil, err
	}

	prices := make([]PriceData, 0, len(valid))
	for _, symbol := range valid {
		raw, ok := payload[coinIDs[symbol]]
		if !ok {
			continue
		}
		data := PriceData{Symbol: symbol, PriceUSD: raw["usd"]}
		if change, ok := raw["usd_24h_change"]; ok {
			c := change
			data.Change24h = &c
		}
		s.storePrice(symbol, data)
		prices = append(prices, data)
	}
	return prices, nil
}

// GetPriceHistory obtiene el historial diario de precios de una moneda
// para los últimos N días
func (s *PriceService) GetPriceHistory(symbol string, days int) ([]PricePoint, error) {
	symbol = strings.ToUpper(symbol)
	coinID, ok := coinIDs[symbol]
	if !ok {
		return nil, fmt.Errorf("moneda no soportada: %s", symbol)
	}

	endpoint := fmt.Sprintf(
		"%s/coins/%s/market_chart?vs_currency=usd&days=%d",
		s.baseURL, coinID, days,
	)

	resp, err := s.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("error consultando historial: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("la API de precios respondió %d", resp.StatusCode)
	}

	var payload struct {
		Prices [][]float64 `json:"prices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decodificando historial: %w", err)
	}

	points := make([]PricePoint, 0, len(payload.Prices))
	for _, pair := range payload.Prices {
		if len(pair) < 2 {
			continue
		}
		// CoinGecko devuelve timestamps en milisegundos
		date := time.Unix(int64(pair[0])/1000, 0).UTC().Format("2006-01-02")
		points = append(points, PricePoint{
			Date:     date,
			PriceUSD: math.Round(pair[1]*100) / 100,
		})
	}
	return points, nil
}
