package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodDelta(t *testing.T) {
	t.Run("variación contra el período anterior", func(t *testing.T) {
		deltaUSD, deltaPercent := periodDelta(150, 100)
		assert.Equal(t, 50.0, deltaUSD)
		assert.Equal(t, 50.0, deltaPercent)
	})

	t.Run("sin período anterior ambas variaciones son cero", func(t *testing.T) {
		deltaUSD, deltaPercent := periodDelta(150, 0)
		assert.Equal(t, 0.0, deltaUSD)
		assert.Equal(t, 0.0, deltaPercent)
	})

	t.Run("período anterior negativo no divide", func(t *testing.T) {
		deltaUSD, deltaPercent := periodDelta(150, -50)
		assert.Equal(t, 0.0, deltaUSD)
		assert.Equal(t, 0.0, deltaPercent)
	})

	t.Run("caída reporta variación negativa", func(t *testing.T) {
		deltaUSD, deltaPercent := periodDelta(75, 100)
		assert.Equal(t, -25.0, deltaUSD)
		assert.Equal(t, -25.0, deltaPercent)
	})
}

func TestRoiPercent(t *testing.T) {
	assert.Equal(t, 50.0, roiPercent(150, 100))
	assert.Equal(t, -50.0, roiPercent(50, 100))
	assert.Equal(t, 0.0, roiPercent(150, 0))
	assert.Equal(t, 0.0, roiPercent(150, -10))
}

func TestAnnualizedROIPercent(t *testing.T) {
	t.Run("duplicar en un año es 100 por ciento anualizado", func(t *testing.T) {
		assert.InDelta(t, 100.0, annualizedROIPercent(200, 100, 12), 0.001)
	})

	t.Run("cuadruplicar en dos años también es 100 anualizado", func(t *testing.T) {
		assert.InDelta(t, 100.0, annualizedROIPercent(400, 100, 24), 0.001)
	})

	t.Run("sin meses ni inversión no hay cálculo", func(t *testing.T) {
		assert.Equal(t, 0.0, annualizedROIPercent(200, 100, 0))
		assert.Equal(t, 0.0, annualizedROIPercent(200, 0, 12))
	})
}

func TestDrawdownAnalysis(t *testing.T) {
	totals := []periodTotal{
		{Year: 2024, Month: 1, Total: 100},
		{Year: 2024, Month: 2, Total: 150},
		{Year: 2024, Month: 3, Total: 120},
		{Year: 2024, Month: 4, Total: 180},
		{Year: 2024, Month: 5, Total: 90},
	}

	analysis := drawdownAnalysis(totals)
	require.Len(t, analysis.History, 5)

	// El ATH nunca baja y el drawdown nunca es positivo
	prevATH := 0.0
	for _, point := range analysis.History {
		assert.GreaterOrEqual(t, point.ATH, prevATH)
		assert.LessOrEqual(t, point.DrawdownPercent, 0.0)
		prevATH = point.ATH
	}

	// Un nuevo máximo deja el drawdown en cero
	assert.Equal(t, 0.0, analysis.History[1].DrawdownPercent)
	assert.Equal(t, 0.0, analysis.History[3].DrawdownPercent)

	// La caída de 150 a 120 es del 20 por ciento contra el ATH
	assert.Equal(t, -20.0, analysis.History[2].DrawdownPercent)

	// El peor mes es mayo: de 180 a 90 es -50
	assert.Equal(t, -50.0, analysis.MaxDrawdownPercent)
	assert.Equal(t, "2024-05", analysis.MaxDrawdownPeriod)

	assert.Equal(t, 180.0, analysis.CurrentATH)
	assert.Equal(t, "2024-04", analysis.ATHPeriod)
	assert.Equal(t, -50.0, analysis.CurrentDrawdownPercent)
}

func TestCompareWithBTC(t *testing.T) {
	t.Run("comparación básica anclada al primer período", func(t *testing.T) {
		totals := []periodTotal{
			{Year: 2024, Month: 1, Total: 1000},
			{Year: 2024, Month: 2, Total: 1200},
		}
		prices := []*float64{floatPtr(10), floatPtr(20)}

		comparison, err := compareWithBTC(totals, prices)
		require.NoError(t, err)

		// Con 1000 a precio 10 se habrían comprado 100 BTC
		assert.Equal(t, 100.0, comparison.BTCAmountEquivalent)
		assert.Equal(t, 1000.0, comparison.InitialPortfolioValue)
		assert.Equal(t, 10.0, comparison.InitialBTCPrice)

		require.Len(t, comparison.History, 2)
		last := comparison.History[1]
		assert.Equal(t, 2000.0, last.BTCValue)
		assert.Equal(t, 100.0, last.BTCPerfPercent)
		assert.Equal(t, 20.0, last.PortfolioPerfPercent)
		assert.Equal(t, -80.0, last.Outperformance)
		assert.Equal(t, -80.0, comparison.CurrentOutperformancePercent)
	})

	t.Run("el ancla saltea los meses sin precio", func(t *testing.T) {
		totals := []periodTotal{
			{Year: 2024, Month: 1, Total: 500},
			{Year: 2024, Month: 2, Total: 1000},
			{Year: 2024, Month: 3, Total: 1100},
		}
		prices := []*float64{nil, floatPtr(50), floatPtr(55)}

		comparison, err := compareWithBTC(totals, prices)
		require.NoError(t, err)

		assert.Equal(t, 1000.0, comparison.InitialPortfolioValue)
		assert.Equal(t, 50.0, comparison.InitialBTCPrice)
		require.Len(t, comparison.History, 2)
	})

	t.Run("menos de dos períodos es insuficiente", func(t *testing.T) {
		totals := []periodTotal{{Year: 2024, Month: 1, Total: 1000}}
		_, err := compareWithBTC(totals, []*float64{floatPtr(10)})
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("sin ningún precio de BTC es insuficiente", func(t *testing.T) {
		totals := []periodTotal{
			{Year: 2024, Month: 1, Total: 1000},
			{Year: 2024, Month: 2, Total: 1200},
		}
		_, err := compareWithBTC(totals, []*float64{nil, nil})
		assert.ErrorIs(t, err, ErrInsufficientData)
	})
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 33.33, round2(33.33333))
	assert.Equal(t, -33.33, round2(-33.33333))
	assert.Equal(t, 0.12345678, round8(0.123456784))
}
