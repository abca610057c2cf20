package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/middleware"
)

// RegisterRoutes registra todas las rutas de la API
func RegisterRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Wallet Tracker API",
			"version": "1.0.0",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	{
		// Billeteras
		api.GET("/wallets", middleware.GetWallets)
		api.POST("/wallets", middleware.CreateWallet)
		api.GET("/wallets/:id", middleware.GetWallet)
		api.PUT("/wallets/:id", middleware.UpdateWallet)
		api.DELETE("/wallets/:id", middleware.DeleteWallet)

		// Entradas mensuales y resumen anual
		api.GET("/monthly", middleware.GetMonthlyEntries)
		api.POST("/monthly", middleware.CreateMonthlyEntry)
		api.POST("/monthly/bulk", middleware.BulkUpsertMonthlyEntries)
		api.GET("/monthly/summary", middleware.GetMonthlySummary)
		api.PUT("/monthly/:id", middleware.UpdateMonthlyEntry)
		api.DELETE("/monthly/:id", middleware.DeleteMonthlyEntry)
		api.GET("/years", middleware.GetAvailableYears)

		// Entradas diarias y serie diaria
		api.GET("/daily", middleware.GetDailyEntries)
		api.POST("/daily", middleware.CreateDailyEntry)
		api.GET("/daily/snapshots", middleware.GetDailySnapshots)
		api.PUT("/daily/:id", middleware.UpdateDailyEntry)
		api.DELETE("/daily/:id", middleware.DeleteDailyEntry)

		// Métricas del portafolio
		api.GET("/metrics/summary", middleware.GetPortfolioMetrics)
		api.GET("/metrics/roi", middleware.GetROIDetails)
		api.GET("/metrics/drawdown", middleware.GetDrawdownAnalysis)
		api.GET("/metrics/vs-btc", middleware.GetBTCComparison)

		// Alertas
		api.GET("/alerts", middleware.GetAlerts)
		api.POST("/alerts", middleware.CreateAlert)
		api.GET("/alerts/check/all", middleware.CheckAlerts)
		api.GET("/alerts/:id", middleware.GetAlert)
		api.PUT("/alerts/:id", middleware.UpdateAlert)
		api.DELETE("/alerts/:id", middleware.DeleteAlert)
		api.POST("/alerts/:id/reset", middleware.ResetAlert)

		// Precios de criptomonedas
		api.GET("/prices/current", middleware.GetCurrentPrices)
		api.GET("/prices/current/:symbol", middleware.GetCurrentPrice)
		api.GET("/prices/history/:symbol", middleware.GetPriceHistory)
	}
}
