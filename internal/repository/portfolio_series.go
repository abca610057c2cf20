package repository

import (
	"fmt"
	"math"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/models"
)

// Nombres de los meses para los resúmenes; el índice 0 queda vacío
var monthNames = [...]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// periodTotal es el total agregado del portafolio para un mes
type periodTotal struct {
	Year  int
	Month int
	Total float64
}

// round2 redondea a 2 decimales. Solo se aplica en el borde de salida
// para no acumular error de redondeo en los cálculos encadenados.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round8 redondea cantidades denominadas en BTC a 8 decimales
func round8(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}

// periodDelta calcula la variación absoluta y porcentual contra el período
// anterior. Si el valor anterior falta o es <= 0, ambas variaciones quedan
// en 0 en lugar de propagar una división por cero.
func periodDelta(total, prev float64) (deltaUSD, deltaPercent float64) {
	if prev <= 0 {
		return 0, 0
	}
	deltaUSD = total - prev
	deltaPercent = deltaUSD / prev * 100
	return deltaUSD, deltaPercent
}

// roiPercent calcula el retorno simple sobre la inversión inicial.
// Sin inversión inicial positiva no hay ROI que medir: devuelve 0.
func roiPercent(current, initial float64) float64 {
	if initial <= 0 {
		return 0
	}
	return (current - initial) / initial * 100
}

// annualizedROIPercent anualiza el retorno por inversión del crecimiento
// compuesto, asumiendo muestreo mensual uniforme. No es una TIR: ignora
// el momento de los aportes intermedios.
func annualizedROIPercent(current, initial float64, monthsTracked int) float64 {
	years := float64(monthsTracked) / 12
	if years <= 0 || initial <= 0 {
		return 0
	}
	return (math.Pow(current/initial, 1/years) - 1) * 100
}

// drawdownAnalysis recorre la serie manteniendo el máximo histórico (ATH)
// y arma el historial de caídas desde ese máximo. El ATH arranca en 0 y
// solo sube cuando un total lo supera estrictamente.
func drawdownAnalysis(totals []periodTotal) *models.DrawdownAnalysis {
	runningATH := 0.0
	athYear, athMonth := 0, 0
	currentDrawdown := 0.0
	maxDrawdown := 0.0
	maxDrawdownPeriod := ""

	history := make([]models.DrawdownPoint, 0, len(totals))

	for _, p := range totals {
		if p.Total > runningATH {
			runningATH = p.Total
			athYear, athMonth = p.Year, p.Month
		}

		if runningATH > 0 {
			currentDrawdown = (p.Total - runningATH) / runningATH * 100
		}

		history = append(history, models.DrawdownPoint{
			Year:            p.Year,
			Month:           p.Month,
			Value:           round2(p.Total),
			ATH:             round2(runningATH),
			DrawdownPercent: round2(currentDrawdown),
		})

		// El peor drawdown de toda la serie y el mes en que ocurrió
		if currentDrawdown < maxDrawdown {
			maxDrawdown = currentDrawdown
			maxDrawdownPeriod = fmt.Sprintf("%d-%02d", p.Year, p.Month)
		}
	}

	athPeriod := ""
	if athYear > 0 {
		athPeriod = fmt.Sprintf("%d-%02d", athYear, athMonth)
	}

	return &models.DrawdownAnalysis{
		CurrentDrawdownPercent: round2(currentDrawdown),
		MaxDrawdownPercent:     round2(maxDrawdown),
		MaxDrawdownPeriod:      maxDrawdownPeriod,
		CurrentATH:             round2(runningATH),
		ATHPeriod:              athPeriod,
		History:                history,
	}
}

// compareWithBTC compara el rendimiento del portafolio contra haber
// comprado BTC con el valor inicial. Se ancla en el primer período que
// tiene total de portafolio y precio de BTC conocido; si no existe ese
// ancla o hay menos de dos períodos devuelve ErrInsufficientData en
// lugar de una comparación parcial.
func compareWithBTC(totals []periodTotal, btcPrices []*float64) (*models.BTCComparison, error) {
	if len(totals) < 2 {
		return nil, ErrInsufficientData
	}

	anchor := -1
	for i, price := range btcPrices {
		if price != nil && *price > 0 {
			anchor = i
			break
		}
	}
	if anchor == -1 {
		return nil, ErrInsufficientData
	}

	firstPortfolio := totals[anchor].Total
	firstBTC := *btcPrices[anchor]

	// Cuánto BTC se podría haber comprado con el valor inicial
	btcAmount := firstPortfolio / firstBTC

	history := make([]models.BTCComparisonPoint, 0, len(totals)-anchor)
	for i := anchor; i < len(totals); i++ {
		p := totals[i]

		portfolioPerf := 0.0
		if firstPortfolio > 0 {
			portfolioPerf = (p.Total - firstPortfolio) / firstPortfolio * 100
		}

		btcPerf := 0.0
		btcValue := 0.0
		if btcPrices[i] != nil && *btcPrices[i] > 0 {
			btcPerf = (*btcPrices[i] - firstBTC) / firstBTC * 100
			btcValue = btcAmount * *btcPrices[i]
		}

		history = append(history, models.BTCComparisonPoint{
			Year:                 p.Year,
			Month:                p.Month,
			PortfolioValue:       round2(p.Total),
			PortfolioPerfPercent: round2(portfolioPerf),
			BTCValue:             round2(btcValue),
			BTCPerfPercent:       round2(btcPerf),
			Outperformance:       round2(portfolioPerf - btcPerf),
		})
	}

	return &models.BTCComparison{
		InitialPortfolioValue:        round2(firstPortfolio),
		InitialBTCPrice:              round2(firstBTC),
		BTCAmountEquivalent:          round8(btcAmount),
		CurrentOutperformancePercent: history[len(history)-1].Outperformance,
		History:                      history,
	}, nil
}
