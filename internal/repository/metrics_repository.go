package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/models"
)

// getMonthlyTotals devuelve la serie completa de totales mensuales del
// portafolio en orden cronológico
func (r *PortfolioRepository) getMonthlyTotals() ([]periodTotal, error) {
	rows, err := r.db.Query(`
		SELECT year, month, SUM(value_usd)
		FROM monthly_entries
		GROUP BY year, month
		ORDER BY year, month`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make([]periodTotal, 0)
	for rows.Next() {
		var p periodTotal
		if err := rows.Scan(&p.Year, &p.Month, &p.Total); err != nil {
			return nil, err
		}
		totals = append(totals, p)
	}
	return totals, rows.Err()
}

// getBTCPriceAtMonth busca el precio de BTC registrado para un mes.
// Si varias entradas lo traen gana la creada primero; si ninguna lo
// trae devuelve nil sin error.
func (r *PortfolioRepository) getBTCPriceAtMonth(year, month int) (*float64, error) {
	var price float64
	err := r.db.QueryRow(`
		SELECT btc_price FROM monthly_entries
		WHERE year = ? AND month = ? AND btc_price IS NOT NULL
		ORDER BY created_at, id
		LIMIT 1`, year, month,
	).Scan(&price)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// getDailyTotalAt devuelve el total del portafolio para una fecha puntual,
// o 0 si no hay entradas diarias ese día
func (r *PortfolioRepository) getDailyTotalAt(date string) (float64, error) {
	var total sql.NullFloat64
	err := r.db.QueryRow(`
		SELECT SUM(value_usd) FROM daily_entries WHERE date = ?`, date,
	).Scan(&total)
	if err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Float64, nil
}

// GetPortfolioMetrics arma el panel general de métricas. Con el historial
// vacío devuelve la estructura en cero, no un error: el panel recién
// creado es un estado válido.
func (r *PortfolioRepository) GetPortfolioMetrics(initialInvestment float64) (*models.PortfolioMetrics, error) {
	totals, err := r.getMonthlyTotals()
	if err != nil {
		return nil, err
	}
	if len(totals) == 0 {
		return &models.PortfolioMetrics{}, nil
	}

	currentValue := totals[len(totals)-1].Total

	// ATH y su fecha recorriendo la serie
	athValue := 0.0
	var athDate *string
	for _, p := range totals {
		if p.Total > athValue {
			athValue = p.Total
			d := fmt.Sprintf("%04d-%02d-01", p.Year, p.Month)
			athDate = &d
		}
	}

	drawdown := 0.0
	if athValue > 0 {
		drawdown = (currentValue - athValue) / athValue * 100
	}

	// Variación contra el mes anterior registrado
	var variation30d *float64
	if len(totals) >= 2 {
		prev := totals[len(totals)-2].Total
		if prev > 0 {
			v := round2((currentValue - prev) / prev * 100)
			variation30d = &v
		}
	}

	// Variación diaria: hoy contra ayer, si ambos días tienen datos
	var variation24h *float64
	now := time.Now().UTC()
	today, err := r.getDailyTotalAt(now.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	yesterday, err := r.getDailyTotalAt(now.AddDate(0, 0, -1).Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if yesterday > 0 && today > 0 {
		v := round2((today - yesterday) / yesterday * 100)
		variation24h = &v
	}

	// Comparación contra BTC entre el primer y el último mes con precio
	btcComparison := 0.0
	first := totals[0]
	last := totals[len(totals)-1]
	firstBTC, err := r.getBTCPriceAtMonth(first.Year, first.Month)
	if err != nil {
		return nil, err
	}
	lastBTC, err := r.getBTCPriceAtMonth(last.Year, last.Month)
	if err != nil {
		return nil, err
	}
	if firstBTC != nil && lastBTC != nil && *firstBTC > 0 && first.Total > 0 {
		portfolioPerf := (currentValue - first.Total) / first.Total * 100
		btcPerf := (*lastBTC - *firstBTC) / *firstBTC * 100
		btcComparison = portfolioPerf - btcPerf
	}

	return &models.PortfolioMetrics{
		CurrentValue:         round2(currentValue),
		ATHValue:             round2(athValue),
		ATHDate:              athDate,
		ROIPercent:           round2(roiPercent(currentValue, initialInvestment)),
		DrawdownPercent:      round2(drawdown),
		BTCComparisonPercent: round2(btcComparison),
		Variation24h:         variation24h,
		Variation30d:         variation30d,
	}, nil
}

// GetROIDetails calcula el retorno simple y anualizado sobre la inversión
// inicial declarada por el usuario
func (r *PortfolioRepository) GetROIDetails(initialInvestment float64) (*models.ROIDetails, error) {
	totals, err := r.getMonthlyTotals()
	if err != nil {
		return nil, err
	}
	if len(totals) == 0 {
		return nil, ErrInsufficientData
	}

	currentValue := totals[len(totals)-1].Total
	monthsTracked := len(totals)

	return &models.ROIDetails{
		InitialInvestment:    round2(initialInvestment),
		CurrentValue:         round2(currentValue),
		ProfitLoss:           round2(currentValue - initialInvestment),
		ROIPercent:           round2(roiPercent(currentValue, initialInvestment)),
		AnnualizedROIPercent: round2(annualizedROIPercent(currentValue, initialInvestment, monthsTracked)),
		MonthsTracked:        monthsTracked,
	}, nil
}

// GetDrawdownAnalysis arma el historial de caídas desde máximos
func (r *PortfolioRepository) GetDrawdownAnalysis() (*models.DrawdownAnalysis, error) {
	totals, err := r.getMonthlyTotals()
	if err != nil {
		return nil, err
	}
	if len(totals) == 0 {
		return nil, ErrInsufficientData
	}
	return drawdownAnalysis(totals), nil
}

// GetBTCComparison compara el portafolio contra la estrategia de haber
// comprado BTC con el valor inicial
func (r *PortfolioRepository) GetBTCComparison() (*models.BTCComparison, error) {
	totals, err := r.getMonthlyTotals()
	if err != nil {
		return nil, err
	}

	btcPrices := make([]*float64, len(totals))
	for i, p := range totals {
		price, err := r.getBTCPriceAtMonth(p.Year, p.Month)
		if err != nil {
			return nil, err
		}
		btcPrices[i] = price
	}

	return compareWithBTC(totals, btcPrices)
}
