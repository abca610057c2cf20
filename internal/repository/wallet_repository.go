package repository

import (
	"database/sql"
	"time"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/models"
)

// WalletRepository maneja las operaciones de base de datos para billeteras
type WalletRepository struct {
	db *sql.DB
}

// NewWalletRepository crea un nuevo repositorio de billeteras
func NewWalletRepository(db *sql.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetWallets obtiene todas las billeteras ordenadas por nombre
func (r *WalletRepository) GetWallets() ([]models.Wallet, error) {
	rows, err := r.db.Query(`
		SELECT id, name, COALESCE(description, ''), COALESCE(color, ?), created_at
		FROM wallets
		ORDER BY name`, models.DefaultWalletColor)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wallets := make([]models.Wallet, 0)
	for rows.Next() {
		var w models.Wallet
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.Color, &w.CreatedAt); err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}

// GetWalletByID obtiene una billetera por su ID
func (r *WalletRepository) GetWalletByID(id string) (*models.Wallet, error) {
	var w models.Wallet
	err := r.db.QueryRow(`
		SELECT id, name, COALESCE(description, ''), COALESCE(color, ?), created_at
		FROM wallets
		WHERE id = ?`, models.DefaultWalletColor, id,
	).Scan(&w.ID, &w.Name, &w.Description, &w.Color, &w.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// GetWalletNames devuelve un mapa id -> nombre para armar los desgloses
// por billetera de los reportes
func (r *WalletRepository) GetWalletNames() (map[string]string, error) {
	rows, err := r.db.Query(`SELECT id, name FROM wallets`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

// CreateWallet crea una nueva billetera. El nombre debe ser único.
func (r *WalletRepository) CreateWallet(w *models.Wallet) error {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM wallets WHERE name = ?`, w.Name).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}

	if w.ID == "" {
		w.ID = models.GenerateID()
	}
	if w.Color == "" {
		w.Color = models.DefaultWalletColor
	}
	w.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO wallets (id, name, description, color, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.Description, w.Color, w.CreatedAt,
	)
	return err
}

// UpdateWallet actualiza los campos enviados de una billetera existente
func (r *WalletRepository) UpdateWallet(id string, upd models.WalletUpdate) (*models.Wallet, error) {
	wallet, err := r.GetWalletByID(id)
	if err != nil {
		return nil, err
	}

	// Verificar que el nuevo nombre no choque con otra billetera
	if upd.Name != nil && *upd.Name != wallet.Name {
		var count int
		if err := r.db.QueryRow(
			`SELECT COUNT(*) FROM wallets WHERE name = ? AND id != ?`, *upd.Name, id,
		).Scan(&count); err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicate
		}
		wallet.Name = *upd.Name
	}
	if upd.Description != nil {
		wallet.Description = *upd.Description
	}
	if upd.Color != nil {
		wallet.Color = *upd.Color
	}

	_, err = r.db.Exec(`
		UPDATE wallets SET name = ?, description = ?, color = ?
		WHERE id = ?`,
		wallet.Name, wallet.Description, wallet.Color, id,
	)
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// DeleteWallet elimina una billetera junto con sus entradas y alertas.
// La cascada se hace explícita dentro de una única transacción SQL.
func (r *WalletRepository) DeleteWallet(id string) (err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	if _, err = tx.Exec(`DELETE FROM monthly_entries WHERE wallet_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(`DELETE FROM daily_entries WHERE wallet_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(`DELETE FROM alerts WHERE wallet_id = ?`, id); err != nil {
		return err
	}

	var res sql.Result
	res, err = tx.Exec(`DELETE FROM wallets WHERE id = ?`, id)
	if err != nil {
		return err
	}

	var affected int64
	affected, err = res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		err = ErrNotFound
		return err
	}
	return nil
}
