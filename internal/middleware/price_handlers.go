package middleware

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetCurrentPrices devuelve los precios actuales de una lista de monedas.
// Si el proveedor externo falla se responde 200 con el error en el cuerpo:
// los precios son un dato auxiliar, no deben tirar abajo al cliente.
func GetCurrentPrices(c *gin.Context) {
	symbols := strings.Split(c.DefaultQuery("symbols", "BTC,ETH"), ",")

	prices, err := priceService.GetMultiplePrices(symbols)
	if err != nil {
		log.Printf("Error al obtener precios: %v", err)
		c.JSON(http.StatusOK, gin.H{"error": "Precios no disponibles en este momento"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prices": prices})
}

// GetCurrentPrice devuelve el precio actual de una moneda puntual
func GetCurrentPrice(c *gin.Context) {
	symbol := c.Param("symbol")

	price, err := priceService.GetCurrentPrice(symbol)
	if err != nil {
		log.Printf("Error al obtener precio de %s: %v", symbol, err)
		c.JSON(http.StatusOK, gin.H{"error": "Precio no disponible en este momento"})
		return
	}
	c.JSON(http.StatusOK, price)
}

// GetPriceHistory devuelve el historial diario de precios de una moneda
func GetPriceHistory(c *gin.Context) {
	symbol := c.Param("symbol")

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cantidad de días inválida"})
		return
	}
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	history, err := priceService.GetPriceHistory(symbol, days)
	if err != nil {
		log.Printf("Error al obtener historial de %s: %v", symbol, err)
		c.JSON(http.StatusOK, gin.H{"error": "Historial no disponible en este momento"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"symbol": strings.ToUpper(symbol), "history": history})
}
