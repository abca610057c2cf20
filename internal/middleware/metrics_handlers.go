package middleware

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/repository"
)

// initialInvestmentParam lee la inversión inicial declarada en la query.
// Sin ella el ROI se informa como 0 en vez de fallar.
func initialInvestmentParam(c *gin.Context) (float64, error) {
	raw := c.DefaultQuery("initial_investment", "0")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0, errors.New("inversión inicial inválida")
	}
	return value, nil
}

// GetPortfolioMetrics devuelve el panel general de métricas del portafolio
func GetPortfolioMetrics(c *gin.Context) {
	initial, err := initialInvestmentParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Inversión inicial inválida"})
		return
	}

	metrics, err := portfolioRepo.GetPortfolioMetrics(initial)
	if err != nil {
		log.Printf("Error al calcular métricas: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al calcular las métricas"})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// GetROIDetails devuelve el detalle de retorno sobre la inversión
func GetROIDetails(c *gin.Context) {
	initial, err := initialInvestmentParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Inversión inicial inválida"})
		return
	}

	details, err := portfolioRepo.GetROIDetails(initial)
	if errors.Is(err, repository.ErrInsufficientData) {
		c.JSON(http.StatusOK, gin.H{
			"insufficient_data": true,
			"message":           "No hay datos mensuales suficientes para calcular el ROI",
		})
		return
	}
	if err != nil {
		log.Printf("Error al calcular ROI: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al calcular el ROI"})
		return
	}
	c.JSON(http.StatusOK, details)
}

// GetDrawdownAnalysis devuelve el historial de caídas desde máximos
func GetDrawdownAnalysis(c *gin.Context) {
	analysis, err := portfolioRepo.GetDrawdownAnalysis()
	if errors.Is(err, repository.ErrInsufficientData) {
		c.JSON(http.StatusOK, gin.H{
			"insufficient_data": true,
			"message":           "No hay datos mensuales suficientes para calcular el drawdown",
		})
		return
	}
	if err != nil {
		log.Printf("Error al calcular drawdown: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al calcular el drawdown"})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// GetBTCComparison devuelve la comparación contra haber comprado BTC
func GetBTCComparison(c *gin.Context) {
	comparison, err := portfolioRepo.GetBTCComparison()
	if errors.Is(err, repository.ErrInsufficientData) {
		c.JSON(http.StatusOK, gin.H{
			"insufficient_data": true,
			"message":           "Se necesitan al menos dos meses con precio de BTC para comparar",
		})
		return
	}
	if err != nil {
		log.Printf("Error al comparar contra BTC: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al comparar contra BTC"})
		return
	}
	c.JSON(http.StatusOK, comparison)
}
