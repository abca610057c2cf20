package middleware

import (
	"database/sql"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/repository"
	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/services"
)

// Repositorios y servicios compartidos por todos los handlers
var (
	walletRepo    *repository.WalletRepository
	entryRepo     *repository.EntryRepository
	portfolioRepo *repository.PortfolioRepository
	alertRepo     *repository.AlertRepository
	priceService  *services.PriceService
)

// Init inicializa los handlers con la base de datos y el servicio de
// precios. Tiene que llamarse antes de registrar las rutas.
func Init(db *sql.DB, prices *services.PriceService) {
	walletRepo = repository.NewWalletRepository(db)
	entryRepo = repository.NewEntryRepository(db)
	portfolioRepo = repository.NewPortfolioRepository(db)
	alertRepo = repository.NewAlertRepository(db)
	priceService = prices
}
