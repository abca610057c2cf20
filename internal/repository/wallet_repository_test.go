package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/models"
)

func TestCreateAndGetWallet(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	wallet := &models.Wallet{Name: "Binance", Description: "Exchange principal"}
	require.NoError(t, repo.CreateWallet(wallet))

	assert.NotEmpty(t, wallet.ID)
	assert.Equal(t, models.DefaultWalletColor, wallet.Color)

	got, err := repo.GetWalletByID(wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Binance", got.Name)
	assert.Equal(t, "Exchange principal", got.Description)
}

func TestCreateWalletDuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	require.NoError(t, repo.CreateWallet(&models.Wallet{Name: "Ledger"}))
	err := repo.CreateWallet(&models.Wallet{Name: "Ledger"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestGetWalletsOrderedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	createTestWallet(t, db, "Zengo")
	createTestWallet(t, db, "Binance")
	createTestWallet(t, db, "Metamask")

	wallets, err := repo.GetWallets()
	require.NoError(t, err)
	require.Len(t, wallets, 3)
	assert.Equal(t, "Binance", wallets[0].Name)
	assert.Equal(t, "Metamask", wallets[1].Name)
	assert.Equal(t, "Zengo", wallets[2].Name)
}

func TestUpdateWallet(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	wallet := createTestWallet(t, db, "Exodus")

	newName := "Exodus Wallet"
	newColor := "#ff0000"
	updated, err := repo.UpdateWallet(wallet.ID, models.WalletUpdate{Name: &newName, Color: &newColor})
	require.NoError(t, err)
	assert.Equal(t, "Exodus Wallet", updated.Name)
	assert.Equal(t, "#ff0000", updated.Color)
}

func TestUpdateWalletNameConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	createTestWallet(t, db, "Binance")
	wallet := createTestWallet(t, db, "Kraken")

	taken := "Binance"
	_, err := repo.UpdateWallet(wallet.ID, models.WalletUpdate{Name: &taken})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdateWalletNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	name := "nada"
	_, err := repo.UpdateWallet("no-existe", models.WalletUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteWalletCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewWalletRepository(db)

	wallet := createTestWallet(t, db, "Binance")
	createTestMonthlyEntry(t, db, wallet.ID, 2024, 1, 1000, nil)
	createTestDailyEntry(t, db, wallet.ID, "2024-01-15", 1000)

	walletID := wallet.ID
	alert := &models.Alert{
		Name:      "Umbral Binance",
		AlertType: models.AlertTypeValueThreshold,
		Condition: models.AlertConditionAbove,
		Threshold: 5000,
		WalletID:  &walletID,
	}
	require.NoError(t, NewAlertRepository(db).CreateAlert(alert))

	require.NoError(t, repo.DeleteWallet(wallet.ID))

	_, err := repo.GetWalletByID(wallet.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	for _, table := range []string{"monthly_entries", "daily_entries", "alerts"} {
		var count int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&count))
		assert.Zero(t, count, table)
	}
}

func TestDeleteWalletNotFound(t *testing.T) {
	db := newTestDB(t)
	err := NewWalletRepository(db).DeleteWallet("no-existe")
	assert.ErrorIs(t, err, ErrNotFound)
}
