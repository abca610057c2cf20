package repository

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/database"
	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/models"
)

// newTestDB abre una base en memoria con el esquema completo.
// Una sola conexión: con más, cada conexión vería una base distinta.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.CreateSchema(db))
	return db
}

func createTestWallet(t *testing.T, db *sql.DB, name string) *models.Wallet {
	t.Helper()

	wallet := &models.Wallet{Name: name}
	require.NoError(t, NewWalletRepository(db).CreateWallet(wallet))
	return wallet
}

func createTestMonthlyEntry(t *testing.T, db *sql.DB, walletID string, year, month int, value float64, btcPrice *float64) *models.MonthlyEntry {
	t.Helper()

	entry := &models.MonthlyEntry{
		WalletID: walletID,
		Year:     year,
		Month:    month,
		ValueUSD: value,
		BTCPrice: btcPrice,
	}
	require.NoError(t, NewEntryRepository(db).CreateMonthlyEntry(entry))
	return entry
}

func createTestDailyEntry(t *testing.T, db *sql.DB, walletID, date string, value float64) *models.DailyEntry {
	t.Helper()

	entry := &models.DailyEntry{
		WalletID: walletID,
		Date:     date,
		ValueUSD: value,
	}
	require.NoError(t, NewEntryRepository(db).CreateDailyEntry(entry))
	return entry
}

func floatPtr(v float64) *float64 { return &v }
