package middleware

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/models"
	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/repository"
)

// GetAlerts devuelve todas las alertas; con ?active_only=true
// filtra las disparadas
func GetAlerts(c *gin.Context) {
	activeOnly := c.DefaultQuery("active_only", "false") == "true"

	alerts, err := alertRepo.GetAlerts(activeOnly)
	if err != nil {
		log.Printf("Error al obtener alertas: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las alertas"})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// GetAlert devuelve una alerta por su ID
func GetAlert(c *gin.Context) {
	alert, err := alertRepo.GetAlertByID(c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alerta no encontrada"})
		return
	}
	if err != nil {
		log.Printf("Error al obtener alerta: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la alerta"})
		return
	}
	c.JSON(http.StatusOK, alert)
}

// CreateAlert crea una nueva alerta
func CreateAlert(c *gin.Context) {
	var alert models.Alert
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de alerta inválidos: " + err.Error()})
		return
	}

	if err := alertRepo.CreateAlert(&alert); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Billetera no encontrada"})
			return
		}
		log.Printf("Error al crear alerta: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la alerta"})
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// UpdateAlert actualiza una alerta existente
func UpdateAlert(c *gin.Context) {
	var upd models.AlertUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de alerta inválidos: " + err.Error()})
		return
	}

	alert, err := alertRepo.UpdateAlert(c.Param("id"), upd)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alerta no encontrada"})
		return
	}
	if err != nil {
		log.Printf("Error al actualizar alerta: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la alerta"})
		return
	}
	c.JSON(http.StatusOK, alert)
}

// DeleteAlert elimina una alerta
func DeleteAlert(c *gin.Context) {
	err := alertRepo.DeleteAlert(c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alerta no encontrada"})
		return
	}
	if err != nil {
		log.Printf("Error al eliminar alerta: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la alerta"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alerta eliminada correctamente"})
}

// ResetAlert rearma una alerta disparada para que vuelva a evaluarse
func ResetAlert(c *gin.Context) {
	alert, err := alertRepo.ResetAlert(c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alerta no encontrada"})
		return
	}
	if err != nil {
		log.Printf("Error al resetear alerta: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al resetear la alerta"})
		return
	}
	c.JSON(http.StatusOK, alert)
}

// optionalFloatQuery lee un parámetro numérico opcional de la query
func optionalFloatQuery(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// CheckAlerts evalúa todas las alertas activas contra los valores
// actuales. Si no viene el precio de BTC se intenta completar con el
// servicio de precios; si tampoco está disponible, las alertas de
// precio de BTC simplemente se saltean.
func CheckAlerts(c *gin.Context) {
	var input models.AlertCheckInput
	var err error

	if input.CurrentPortfolioValue, err = optionalFloatQuery(c, "current_portfolio_value"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valor de portafolio inválido"})
		return
	}
	if input.CurrentBTCPrice, err = optionalFloatQuery(c, "current_btc_price"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Precio de BTC inválido"})
		return
	}
	if input.Variation24h, err = optionalFloatQuery(c, "variation_24h"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Variación inválida"})
		return
	}

	if input.CurrentBTCPrice == nil && priceService != nil {
		if price, priceErr := priceService.GetCurrentPrice("BTC"); priceErr == nil {
			input.CurrentBTCPrice = &price.PriceUSD
		} else {
			log.Printf("No se pudo obtener el precio de BTC: %v", priceErr)
		}
	}

	result, err := alertRepo.CheckAlerts(input)
	if err != nil {
		log.Printf("Error al evaluar alertas: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al evaluar las alertas"})
		return
	}
	c.JSON(http.StatusOK, result)
}
