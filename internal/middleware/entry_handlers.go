package middleware

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/models"
	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/repository"
)

// yearParam lee el parámetro year, usando el año actual si no viene
func yearParam(c *gin.Context) (int, error) {
	raw := c.Query("year")
	if raw == "" {
		return time.Now().UTC().Year(), nil
	}
	return strconv.Atoi(raw)
}

// monthParam lee el parámetro month, usando el mes actual si no viene
func monthParam(c *gin.Context) (int, error) {
	raw := c.Query("month")
	if raw == "" {
		return int(time.Now().UTC().Month()), nil
	}
	month, err := strconv.Atoi(raw)
	if err != nil || month < 1 || month > 12 {
		return 0, errors.New("mes inválido")
	}
	return month, nil
}

// GetMonthlyEntries devuelve las entradas mensuales, con filtros
// opcionales por año y billetera
func GetMonthlyEntries(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Año inválido"})
			return
		}
		year = parsed
	}

	entries, err := entryRepo.GetMonthlyEntries(year, c.Query("wallet_id"))
	if err != nil {
		log.Printf("Error al obtener entradas mensuales: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las entradas"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateMonthlyEntry crea una entrada mensual para una billetera
func CreateMonthlyEntry(c *gin.Context) {
	var entry models.MonthlyEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de entrada inválidos: " + err.Error()})
		return
	}

	if err := entryRepo.CreateMonthlyEntry(&entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Billetera no encontrada"})
			return
		}
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Ya existe una entrada para esa billetera en ese mes"})
			return
		}
		log.Printf("Error al crear entrada mensual: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la entrada"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// BulkUpsertMonthlyEntries carga los valores de varias billeteras para
// un mismo mes, sobreescribiendo las entradas existentes
func BulkUpsertMonthlyEntries(c *gin.Context) {
	var req models.BulkMonthlyEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de carga inválidos: " + err.Error()})
		return
	}

	entries, err := entryRepo.BulkUpsertMonthlyEntries(req)
	if err != nil {
		log.Printf("Error en carga masiva: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar las entradas"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// UpdateMonthlyEntry actualiza una entrada mensual
func UpdateMonthlyEntry(c *gin.Context) {
	var upd models.MonthlyEntryUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de entrada inválidos: " + err.Error()})
		return
	}

	entry, err := entryRepo.UpdateMonthlyEntry(c.Param("id"), upd)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entrada no encontrada"})
		return
	}
	if err != nil {
		log.Printf("Error al actualizar entrada mensual: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la entrada"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteMonthlyEntry elimina una entrada mensual
func DeleteMonthlyEntry(c *gin.Context) {
	err := entryRepo.DeleteMonthlyEntry(c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entrada no encontrada"})
		return
	}
	if err != nil {
		log.Printf("Error al eliminar entrada mensual: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la entrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entrada eliminada correctamente"})
}

// GetMonthlySummary devuelve el resumen mensual de un año con las
// variaciones calculadas
func GetMonthlySummary(c *gin.Context) {
	year, err := yearParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Año inválido"})
		return
	}

	summary, err := portfolioRepo.GetYearlySummary(year)
	if err != nil {
		log.Printf("Error al armar resumen anual: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al armar el resumen"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetDailyEntries devuelve las entradas diarias de un mes calendario
func GetDailyEntries(c *gin.Context) {
	year, err := yearParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Año inválido"})
		return
	}
	month, err := monthParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mes inválido"})
		return
	}

	entries, err := entryRepo.GetDailyEntries(year, month, c.Query("wallet_id"))
	if err != nil {
		log.Printf("Error al obtener entradas diarias: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las entradas"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateDailyEntry crea una entrada diaria para una billetera
func CreateDailyEntry(c *gin.Context) {
	var entry models.DailyEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de entrada inválidos: " + err.Error()})
		return
	}

	if err := entryRepo.CreateDailyEntry(&entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Billetera no encontrada"})
			return
		}
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Ya existe una entrada para esa billetera en esa fecha"})
			return
		}
		log.Printf("Error al crear entrada diaria: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la entrada"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateDailyEntry actualiza una entrada diaria
func UpdateDailyEntry(c *gin.Context) {
	var upd models.DailyEntryUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de entrada inválidos: " + err.Error()})
		return
	}

	entry, err := entryRepo.UpdateDailyEntry(c.Param("id"), upd)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entrada no encontrada"})
		return
	}
	if err != nil {
		log.Printf("Error al actualizar entrada diaria: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la entrada"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteDailyEntry elimina una entrada diaria
func DeleteDailyEntry(c *gin.Context) {
	err := entryRepo.DeleteDailyEntry(c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entrada no encontrada"})
		return
	}
	if err != nil {
		log.Printf("Error al eliminar entrada diaria: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la entrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entrada eliminada correctamente"})
}

// GetDailySnapshots devuelve la serie diaria agregada de un mes
func GetDailySnapshots(c *gin.Context) {
	year, err := yearParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Año inválido"})
		return
	}
	month, err := monthParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mes inválido"})
		return
	}

	snapshots, err := portfolioRepo.GetDailySnapshots(year, month)
	if err != nil {
		log.Printf("Error al armar serie diaria: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al armar la serie diaria"})
		return
	}
	c.JSON(http.StatusOK, snapshots)
}

// GetAvailableYears devuelve los años que tienen datos cargados
func GetAvailableYears(c *gin.Context) {
	years, err := entryRepo.GetYears()
	if err != nil {
		log.Printf("Error al obtener años: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los años"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"years": years})
}
