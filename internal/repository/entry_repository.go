package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/models"
)

// EntryRepository maneja las entradas de valuación mensuales y diarias
type EntryRepository struct {
	db *sql.DB
}

// NewEntryRepository crea un nuevo repositorio de entradas
func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// monthWindow devuelve el primer y último día del mes como texto YYYY-MM-DD
func monthWindow(year, month int) (string, string) {
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	end := fmt.Sprintf("%04d-%02d-%02d", year, month, lastDay)
	return start, end
}

func (r *EntryRepository) walletExists(walletID string) (bool, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM wallets WHERE id = ?`, walletID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetMonthlyEntries obtiene las entradas mensuales con filtros opcionales
// por año y billetera, ordenadas por período ascendente
func (r *EntryRepository) GetMonthlyEntries(year int, walletID string) ([]models.MonthlyEntry, error) {
	query := `
		SELECT id, wallet_id, year, month, value_usd, btc_price, notes, created_at
		FROM monthly_entries
		WHERE 1=1`
	args := []interface{}{}

	if year > 0 {
		query += ` AND year = ?`
		args = append(args, year)
	}
	if walletID != "" {
		query += ` AND wallet_id = ?`
		args = append(args, walletID)
	}
	query += ` ORDER BY year, month`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.MonthlyEntry, 0)
	for rows.Next() {
		var e models.MonthlyEntry
		if err := rows.Scan(&e.ID, &e.WalletID, &e.Year, &e.Month, &e.ValueUSD, &e.BTCPrice, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateMonthlyEntry crea una entrada mensual. La clave (billetera, año, mes)
// debe ser única: un duplicado es un conflicto, no una sobreescritura.
func (r *EntryRepository) CreateMonthlyEntry(e *models.MonthlyEntry) error {
	exists, err := r.walletExists(e.WalletID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	var count int
	err = r.db.QueryRow(`
		SELECT COUNT(*) FROM monthly_entries
		WHERE wallet_id = ? AND year = ? AND month = ?`,
		e.WalletID, e.Year, e.Month,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}

	if e.ID == "" {
		e.ID = models.GenerateID()
	}
	e.CreatedAt = time.Now().UTC()

	_, err = r.db.Exec(`
		INSERT INTO monthly_entries (id, wallet_id, year, month, value_usd, btc_price, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.WalletID, e.Year, e.Month, e.ValueUSD, e.BTCPrice, e.Notes, e.CreatedAt,
	)
	return err
}

// BulkUpsertMonthlyEntries carga los valores de varias billeteras para un
// mismo mes. A diferencia del alta individual, acá una entrada existente
// se sobreescribe a propósito con el nuevo valor.
func (r *EntryRepository) BulkUpsertMonthlyEntries(req models.BulkMonthlyEntry) (result []models.MonthlyEntry, err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	result = make([]models.MonthlyEntry, 0, len(req.Entries))
	for _, item := range req.Entries {
		// Entradas incompletas se ignoran en vez de abortar la carga
		if item.WalletID == "" || item.ValueUSD == nil {
			continue
		}

		var existing models.MonthlyEntry
		scanErr := tx.QueryRow(`
			SELECT id, wallet_id, year, month, value_usd, btc_price, notes, created_at
			FROM monthly_entries
			WHERE wallet_id = ? AND year = ? AND month = ?`,
			item.WalletID, req.Year, req.Month,
		).Scan(&existing.ID, &existing.WalletID, &existing.Year, &existing.Month,
			&existing.ValueUSD, &existing.BTCPrice, &existing.Notes, &existing.CreatedAt)

		if scanErr == nil {
			existing.ValueUSD = *item.ValueUSD
			if req.BTCPrice != nil {
				existing.BTCPrice = req.BTCPrice
			}
			if _, err = tx.Exec(`
				UPDATE monthly_entries SET value_usd = ?, btc_price = ?
				WHERE id = ?`,
				existing.ValueUSD, existing.BTCPrice, existing.ID,
			); err != nil {
				return nil, err
			}
			result = append(result, existing)
			continue
		}
		if scanErr != sql.ErrNoRows {
			err = scanErr
			return nil, err
		}

		entry := models.MonthlyEntry{
			ID:        models.GenerateID(),
			WalletID:  item.WalletID,
			Year:      req.Year,
			Month:     req.Month,
			ValueUSD:  *item.ValueUSD,
			BTCPrice:  req.BTCPrice,
			CreatedAt: time.Now().UTC(),
		}
		if _, err = tx.Exec(`
			INSERT INTO monthly_entries (id, wallet_id, year, month, value_usd, btc_price, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.ID, entry.WalletID, entry.Year, entry.Month, entry.ValueUSD, entry.BTCPrice, entry.Notes, entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}

	return result, nil
}

// UpdateMonthlyEntry actualiza los campos enviados de una entrada mensual
func (r *EntryRepository) UpdateMonthlyEntry(id string, upd models.MonthlyEntryUpdate) (*models.MonthlyEntry, error) {
	var e models.MonthlyEntry
	err := r.db.QueryRow(`
		SELECT id, wallet_id, year, month, value_usd, btc_price, notes, created_at
		FROM monthly_entries WHERE id = ?`, id,
	).Scan(&e.ID, &e.WalletID, &e.Year, &e.Month, &e.ValueUSD, &e.BTCPrice, &e.Notes, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if upd.ValueUSD != nil {
		e.ValueUSD = *upd.ValueUSD
	}
	if upd.BTCPrice != nil {
		e.BTCPrice = upd.BTCPrice
	}
	if upd.Notes != nil {
		e.Notes = upd.Notes
	}

	_, err = r.db.Exec(`
		UPDATE monthly_entries SET value_usd = ?, btc_price = ?, notes = ?
		WHERE id = ?`,
		e.ValueUSD, e.BTCPrice, e.Notes, id,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteMonthlyEntry elimina una entrada mensual
func (r *EntryRepository) DeleteMonthlyEntry(id string) error {
	res, err := r.db.Exec(`DELETE FROM monthly_entries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetDailyEntries obtiene las entradas diarias de un mes calendario,
// opcionalmente filtradas por billetera, ordenadas por fecha
func (r *EntryRepository) GetDailyEntries(year, month int, walletID string) ([]models.DailyEntry, error) {
	start, end := monthWindow(year, month)

	query := `
		SELECT id, wallet_id, date, value_usd, notes, created_at
		FROM daily_entries
		WHERE date BETWEEN ? AND ?`
	args := []interface{}{start, end}

	if walletID != "" {
		query += ` AND wallet_id = ?`
		args = append(args, walletID)
	}
	query += ` ORDER BY date`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.DailyEntry, 0)
	for rows.Next() {
		var e models.DailyEntry
		if err := rows.Scan(&e.ID, &e.WalletID, &e.Date, &e.ValueUSD, &e.Notes, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateDailyEntry crea una entrada diaria. La clave (billetera, fecha)
// debe ser única.
func (r *EntryRepository) CreateDailyEntry(e *models.DailyEntry) error {
	exists, err := r.walletExists(e.WalletID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	var count int
	err = r.db.QueryRow(`
		SELECT COUNT(*) FROM daily_entries WHERE wallet_id = ? AND date = ?`,
		e.WalletID, e.Date,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}

	if e.ID == "" {
		e.ID = models.GenerateID()
	}
	e.CreatedAt = time.Now().UTC()

	_, err = r.db.Exec(`
		INSERT INTO daily_entries (id, wallet_id, date, value_usd, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.WalletID, e.Date, e.ValueUSD, e.Notes, e.CreatedAt,
	)
	return err
}

// UpdateDailyEntry actualiza los campos enviados de una entrada diaria
func (r *EntryRepository) UpdateDailyEntry(id string, upd models.DailyEntryUpdate) (*models.DailyEntry, error) {
	var e models.DailyEntry
	err := r.db.QueryRow(`
		SELECT id, wallet_id, date, value_usd, notes, created_at
		FROM daily_entries WHERE id = ?`, id,
	).Scan(&e.ID, &e.WalletID, &e.Date, &e.ValueUSD, &e.Notes, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if upd.ValueUSD != nil {
		e.ValueUSD = *upd.ValueUSD
	}
	if upd.Notes != nil {
		e.Notes = upd.Notes
	}

	_, err = r.db.Exec(`
		UPDATE daily_entries SET value_usd = ?, notes = ? WHERE id = ?`,
		e.ValueUSD, e.Notes, id,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteDailyEntry elimina una entrada diaria
func (r *EntryRepository) DeleteDailyEntry(id string) error {
	res, err := r.db.Exec(`DELETE FROM daily_entries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetYears devuelve los años con datos mensuales, de más reciente a más viejo
func (r *EntryRepository) GetYears() ([]int, error) {
	rows, err := r.db.Query(`SELECT DISTINCT year FROM monthly_entries ORDER BY year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	years := make([]int, 0)
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		years = append(years, year)
	}
	return years, rows.Err()
}
