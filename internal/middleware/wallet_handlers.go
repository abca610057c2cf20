package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/models"
	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/repository"
)

// GetWallets devuelve todas las billeteras
func GetWallets(c *gin.Context) {
	wallets, err := walletRepo.GetWallets()
	if err != nil {
		log.Printf("Error al obtener billeteras: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las billeteras"})
		return
	}
	c.JSON(http.StatusOK, wallets)
}

// GetWallet devuelve una billetera por su ID
func GetWallet(c *gin.Context) {
	wallet, err := walletRepo.GetWalletByID(c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Billetera no encontrada"})
		return
	}
	if err != nil {
		log.Printf("Error al obtener billetera: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la billetera"})
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// CreateWallet crea una nueva billetera
func CreateWallet(c *gin.Context) {
	var wallet models.Wallet
	if err := c.ShouldBindJSON(&wallet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de billetera inválidos: " + err.Error()})
		return
	}

	if err := walletRepo.CreateWallet(&wallet); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Ya existe una billetera con ese nombre"})
			return
		}
		log.Printf("Error al crear billetera: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la billetera"})
		return
	}
	c.JSON(http.StatusCreated, wallet)
}

// UpdateWallet actualiza una billetera existente
func UpdateWallet(c *gin.Context) {
	var upd models.WalletUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de billetera inválidos: " + err.Error()})
		return
	}

	wallet, err := walletRepo.UpdateWallet(c.Param("id"), upd)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Billetera no encontrada"})
		return
	}
	if errors.Is(err, repository.ErrDuplicate) {
		c.JSON(http.StatusConflict, gin.H{"error": "Ya existe una billetera con ese nombre"})
		return
	}
	if err != nil {
		log.Printf("Error al actualizar billetera: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la billetera"})
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// DeleteWallet elimina una billetera con todas sus entradas y alertas
func DeleteWallet(c *gin.Context) {
	err := walletRepo.DeleteWallet(c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Billetera no encontrada"})
		return
	}
	if err != nil {
		log.Printf("Error al eliminar billetera: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la billetera"})
		return
	}
	c.Status(http.StatusNoContent)
}
