package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPortfolioMetricsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewPortfolioRepository(db)

	metrics, err := repo.GetPortfolioMetrics(0)
	require.NoError(t, err)

	assert.Equal(t, 0.0, metrics.CurrentValue)
	assert.Equal(t, 0.0, metrics.ATHValue)
	assert.Nil(t, metrics.ATHDate)
	assert.Equal(t, 0.0, metrics.ROIPercent)
	assert.Nil(t, metrics.Variation24h)
	assert.Nil(t, metrics.Variation30d)
}

func TestGetPortfolioMetrics(t *testing.T) {
	db := newTestDB(t)
	repo := NewPortfolioRepository(db)

	wallet := createTestWallet(t, db, "Binance")
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 1, 100, floatPtr(50000))
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 2, 200, floatPtr(60000))
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 3, 150, floatPtr(55000))

	metrics, err := repo.GetPortfolioMetrics(100)
	require.NoError(t, err)

	assert.Equal(t, 150.0, metrics.CurrentValue)
	assert.Equal(t, 200.0, metrics.ATHValue)
	require.NotNil(t, metrics.ATHDate)
	assert.Equal(t, "2024-02-01", *metrics.ATHDate)

	assert.Equal(t, 50.0, metrics.ROIPercent)
	assert.Equal(t, -25.0, metrics.DrawdownPercent)

	require.NotNil(t, metrics.Variation30d)
	assert.Equal(t, -25.0, *metrics.Variation30d)

	// Portafolio +50 contra BTC +10 entre el primer y el último mes
	assert.Equal(t, 40.0, metrics.BTCComparisonPercent)

	// Sin entradas diarias no hay variación de 24 horas
	assert.Nil(t, metrics.Variation24h)
}

func TestGetPortfolioMetricsVariation24h(t *testing.T) {
	db := newTestDB(t)
	repo := NewPortfolioRepository(db)

	wallet := createTestWallet(t, db, "Binance")
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 1, 100, nil)

	now := time.Now().UTC()
	createTestDailyEntry(t, db, wallet.ID, now.AddDate(0, 0, -1).Format("2006-01-02"), 200)
	createTestDailyEntry(t, db, wallet.ID, now.Format("2006-01-02"), 220)

	metrics, err := repo.GetPortfolioMetrics(0)
	require.NoError(t, err)

	require.NotNil(t, metrics.Variation24h)
	assert.Equal(t, 10.0, *metrics.Variation24h)
}

func TestGetPortfolioMetricsVariation24hRequiresBothDays(t *testing.T) {
	db := newTestDB(t)
	repo := NewPortfolioRepository(db)

	wallet := createTestWallet(t, db, "Binance")
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 1, 100, nil)

	// Solo ayer tiene datos: sin el valor de hoy no hay variación,
	// no un -100 espurio
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	createTestDailyEntry(t, db, wallet.ID, yesterday, 200)

	metrics, err := repo.GetPortfolioMetrics(0)
	require.NoError(t, err)
	assert.Nil(t, metrics.Variation24h)
}

func TestGetROIDetails(t *testing.T) {
	db := newTestDB(t)
	repo := NewPortfolioRepository(db)

	wallet := createTestWallet(t, db, "Binance")
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 1, 100, nil)
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 2, 120, nil)
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 3, 150, nil)

	details, err := repo.GetROIDetails(100)
	require.NoError(t, err)

	assert.Equal(t, 100.0, details.InitialInvestment)
	assert.Equal(t, 150.0, details.CurrentValue)
	assert.Equal(t, 50.0, details.ProfitLoss)
	assert.Equal(t, 50.0, details.ROIPercent)
	assert.Equal(t, 3, details.MonthsTracked)

	// 1.5 elevado a 4 (un trimestre anualizado) menos 1
	assert.InDelta(t, 406.25, details.AnnualizedROIPercent, 0.01)
}

func TestGetROIDetailsEmpty(t *testing.T) {
	db := newTestDB(t)
	_, err := NewPortfolioRepository(db).GetROIDetails(100)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestGetDrawdownAnalysisFromDB(t *testing.T) {
	db := newTestDB(t)
	repo := NewPortfolioRepository(db)

	wallet := createTestWallet(t, db, "Binance")
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 1, 100, nil)
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 2, 200, nil)
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 3, 160, nil)

	analysis, err := repo.GetDrawdownAnalysis()
	require.NoError(t, err)

	assert.Equal(t, 200.0, analysis.CurrentATH)
	assert.Equal(t, "2024-02", analysis.ATHPeriod)
	assert.Equal(t, -20.0, analysis.CurrentDrawdownPercent)
	assert.Equal(t, -20.0, analysis.MaxDrawdownPercent)
	require.Len(t, analysis.History, 3)
}

func TestGetDrawdownAnalysisEmpty(t *testing.T) {
	db := newTestDB(t)
	_, err := NewPortfolioRepository(db).GetDrawdownAnalysis()
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestGetBTCComparisonFromDB(t *testing.T) {
	db := newTestDB(t)
	repo := NewPortfolioRepository(db)

	wallet := createTestWallet(t, db, "Binance")
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 1, 1000, floatPtr(50000))
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 2, 1500, floatPtr(55000))

	comparison, err := repo.GetBTCComparison()
	require.NoError(t, err)

	assert.Equal(t, 1000.0, comparison.InitialPortfolioValue)
	assert.Equal(t, 50000.0, comparison.InitialBTCPrice)
	assert.Equal(t, 0.02, comparison.BTCAmountEquivalent)

	require.Len(t, comparison.History, 2)
	assert.Equal(t, 50.0, comparison.History[1].PortfolioPerfPercent)
	assert.Equal(t, 10.0, comparison.History[1].BTCPerfPercent)
	assert.Equal(t, 40.0, comparison.CurrentOutperformancePercent)
}

func TestGetBTCComparisonWithoutPrices(t *testing.T) {
	db := newTestDB(t)
	repo := NewPortfolioRepository(db)

	wallet := createTestWallet(t, db, "Binance")
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 1, 1000, nil)
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 2, 1500, nil)

	_, err := repo.GetBTCComparison()
	assert.ErrorIs(t, err, ErrInsufficientData)
}
