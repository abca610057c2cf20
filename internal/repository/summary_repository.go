package repository

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/models"
)

// PortfolioRepository arma los reportes derivados del portafolio.
// Nunca cachea series: cada consulta recalcula sobre los datos guardados.
type PortfolioRepository struct {
	db *sql.DB
}

// NewPortfolioRepository crea un nuevo repositorio de reportes
func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// monthAgg acumula el total de un mes y su desglose por billetera
type monthAgg struct {
	total    float64
	btcPrice *float64
	wallets  map[string]float64
}

// GetYearlySummary arma el resumen mensual de un año con las variaciones
// calculadas. El diciembre del año anterior actúa como base para la
// variación de enero.
func (r *PortfolioRepository) GetYearlySummary(year int) (*models.YearlySummary, error) {
	walletNames, err := NewWalletRepository(r.db).GetWalletNames()
	if err != nil {
		return nil, err
	}

	// Filas del año ordenadas por mes y orden de creación; el primer
	// btc_price no nulo de cada mes es el que se informa
	rows, err := r.db.Query(`
		SELECT wallet_id, month, value_usd, btc_price
		FROM monthly_entries
		WHERE year = ?
		ORDER BY month, created_at, id`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := make(map[int]*monthAgg)
	for rows.Next() {
		var walletID string
		var month int
		var value float64
		var btcPrice *float64
		if err := rows.Scan(&walletID, &month, &value, &btcPrice); err != nil {
			return nil, err
		}

		agg, ok := grouped[month]
		if !ok {
			agg = &monthAgg{wallets: make(map[string]float64)}
			grouped[month] = agg
		}
		agg.total += value
		if agg.btcPrice == nil && btcPrice != nil {
			agg.btcPrice = btcPrice
		}

		name, ok := walletNames[walletID]
		if !ok {
			// Billetera borrada: etiqueta sintética para no perder el valor
			name = fmt.Sprintf("Wallet %s", walletID)
		}
		agg.wallets[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Diciembre del año anterior para la variación de enero
	var prevDecTotal float64
	err = r.db.QueryRow(`
		SELECT COALESCE(SUM(value_usd), 0) FROM monthly_entries
		WHERE year = ? AND month = 12`, year-1,
	).Scan(&prevDecTotal)
	if err != nil {
		return nil, err
	}

	// La serie es dispersa: los meses sin datos se omiten, no se rellenan
	monthlyData := make([]models.MonthlyDelta, 0, len(grouped))
	prev := prevDecTotal
	for month := 1; month <= 12; month++ {
		agg, ok := grouped[month]
		if !ok {
			continue
		}

		deltaUSD, deltaPercent := periodDelta(agg.total, prev)
		monthlyData = append(monthlyData, models.MonthlyDelta{
			Year:         year,
			Month:        month,
			MonthName:    monthNames[month],
			TotalValue:   agg.total,
			DeltaUSD:     deltaUSD,
			DeltaPercent: round2(deltaPercent),
			BTCPrice:     agg.btcPrice,
			Wallets:      agg.wallets,
		})
		prev = agg.total
	}

	startValue := prevDecTotal
	if prevDecTotal <= 0 {
		if len(monthlyData) > 0 {
			startValue = monthlyData[0].TotalValue
		} else {
			startValue = 0
		}
	}
	endValue := 0.0
	if len(monthlyData) > 0 {
		endValue = monthlyData[len(monthlyData)-1].TotalValue
	}

	yearlyDelta := endValue - startValue
	yearlyPercent := 0.0
	if startValue > 0 {
		yearlyPercent = yearlyDelta / startValue * 100
	}

	return &models.YearlySummary{
		Year:         year,
		StartValue:   startValue,
		EndValue:     endValue,
		DeltaUSD:     round2(yearlyDelta),
		DeltaPercent: round2(yearlyPercent),
		MonthlyData:  monthlyData,
	}, nil
}

// dayAgg acumula el total de un día y su desglose por billetera
type dayAgg struct {
	total   float64
	wallets map[string]float64
}

// GetDailySnapshots arma la serie diaria de un mes con la variación
// porcentual contra el día anterior registrado. No hay arrastre entre
// meses: el primer día siempre reporta variación 0.
func (r *PortfolioRepository) GetDailySnapshots(year, month int) ([]models.DailySnapshot, error) {
	walletNames, err := NewWalletRepository(r.db).GetWalletNames()
	if err != nil {
		return nil, err
	}

	start, end := monthWindow(year, month)
	rows, err := r.db.Query(`
		SELECT wallet_id, date, value_usd
		FROM daily_entries
		WHERE date BETWEEN ? AND ?`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := make(map[string]*dayAgg)
	for rows.Next() {
		var walletID, date string
		var value float64
		if err := rows.Scan(&walletID, &date, &value); err != nil {
			return nil, err
		}

		agg, ok := grouped[date]
		if !ok {
			agg = &dayAgg{wallets: make(map[string]float64)}
			grouped[date] = agg
		}
		agg.total += value

		name, ok := walletNames[walletID]
		if !ok {
			name = fmt.Sprintf("Wallet %s", walletID)
		}
		agg.wallets[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	snapshots := make([]models.DailySnapshot, 0, len(dates))
	prev := 0.0
	for _, date := range dates {
		agg := grouped[date]
		_, deltaPercent := periodDelta(agg.total, prev)

		snapshots = append(snapshots, models.DailySnapshot{
			Date:         date,
			TotalValue:   agg.total,
			DeltaPercent: round2(deltaPercent),
			Wallets:      agg.wallets,
		})
		prev = agg.total
	}

	return snapshots, nil
}
