package repository

import (
	"database/sql"
	"time"

	"github.com/WalletPulseCode/Wallet_Tracker_Api.git/internal/models"
)

// AlertRepository maneja las operaciones de base de datos para alertas
type AlertRepository struct {
	db *sql.DB
}

// NewAlertRepository crea un nuevo repositorio de alertas
func NewAlertRepository(db *sql.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

const alertColumns = `id, name, alert_type, condition, threshold, wallet_id, is_active, triggered_at, created_at`

// scanAlert arma una alerta a partir de una fila. El is_active se guarda
// como entero en sqlite y se traduce a bool acá.
func scanAlert(scan func(dest ...interface{}) error) (*models.Alert, error) {
	var a models.Alert
	var isActive int
	err := scan(&a.ID, &a.Name, &a.AlertType, &a.Condition, &a.Threshold,
		&a.WalletID, &isActive, &a.TriggeredAt, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.IsActive = isActive != 0
	return &a, nil
}

// GetAlerts obtiene las alertas, opcionalmente solo las activas,
// de la más nueva a la más vieja
func (r *AlertRepository) GetAlerts(activeOnly bool) ([]models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := make([]models.Alert, 0)
	for rows.Next() {
		a, err := scanAlert(rows.Scan)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, *a)
	}
	return alerts, rows.Err()
}

// GetAlertByID obtiene una alerta por su ID
func (r *AlertRepository) GetAlertByID(id string) (*models.Alert, error) {
	row := r.db.QueryRow(`SELECT `+alertColumns+` FROM alerts WHERE id = ?`, id)
	a, err := scanAlert(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAlert crea una nueva alerta. Si viene acotada a una billetera,
// la billetera tiene que existir.
func (r *AlertRepository) CreateAlert(a *models.Alert) error {
	if a.WalletID != nil {
		var count int
		if err := r.db.QueryRow(`SELECT COUNT(*) FROM wallets WHERE id = ?`, *a.WalletID).Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	}

	if a.ID == "" {
		a.ID = models.GenerateID()
	}
	a.IsActive = true
	a.TriggeredAt = nil
	a.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO alerts (id, name, alert_type, condition, threshold, wallet_id, is_active, triggered_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 1, NULL, ?)`,
		a.ID, a.Name, a.AlertType, a.Condition, a.Threshold, a.WalletID, a.CreatedAt,
	)
	return err
}

// UpdateAlert actualiza los campos enviados de una alerta
func (r *AlertRepository) UpdateAlert(id string, upd models.AlertUpdate) (*models.Alert, error) {
	alert, err := r.GetAlertByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		alert.Name = *upd.Name
	}
	if upd.AlertType != nil {
		alert.AlertType = *upd.AlertType
	}
	if upd.Threshold != nil {
		alert.Threshold = *upd.Threshold
	}
	if upd.Condition != nil {
		alert.Condition = *upd.Condition
	}
	if upd.IsActive != nil {
		alert.IsActive = *upd.IsActive
	}

	isActive := 0
	if alert.IsActive {
		isActive = 1
	}
	_, err = r.db.Exec(`
		UPDATE alerts SET name = ?, alert_type = ?, threshold = ?, condition = ?, is_active = ?
		WHERE id = ?`,
		alert.Name, alert.AlertType, alert.Threshold, alert.Condition, isActive, id,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

// DeleteAlert elimina una alerta
func (r *AlertRepository) DeleteAlert(id string) error {
	res, err := r.db.Exec(`DELETE FROM alerts WHERE id = ?`, id)
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

// ResetAlert rearma una alerta disparada: borra la marca de disparo y la
// vuelve a activar para que pueda dispararse de nuevo
func (r *AlertRepository) ResetAlert(id string) (*models.Alert, error) {
	res, err := r.db.Exec(`
		UPDATE alerts SET triggered_at = NULL, is_active = 1 WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetAlertByID(id)
}

// CheckAlerts evalúa todas las alertas activas contra los valores actuales
// y desactiva las que se disparan, todo dentro de una transacción para que
// una alerta no pueda dispararse dos veces en chequeos concurrentes.
func (r *AlertRepository) CheckAlerts(input models.AlertCheckInput) (result *models.AlertCheckResult, err error) {
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

	// Primero se leen todas las alertas activas; las filas se cierran
	// antes de ejecutar los UPDATE sobre la misma transacción
	rows, err := tx.Query(`SELECT ` + alertColumns + ` FROM alerts WHERE is_active = 1`)
	if err != nil {
		return nil, err
	}

	active := make([]models.Alert, 0)
	for rows.Next() {
		a, scanErr := scanAlert(rows.Scan)
		if scanErr != nil {
			rows.Close()
			err = scanErr
			return nil, err
		}
		active = append(active, *a)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	triggered := make([]models.TriggeredAlert, 0)
	for _, alert := range active {
		var current *float64

		switch alert.AlertType {
		case models.AlertTypeValueThreshold:
			if alert.WalletID != nil {
				// Alerta acotada: se evalúa contra el último valor
				// mensual registrado de esa billetera
				var value float64
				scanErr := tx.QueryRow(`
					SELECT value_usd FROM monthly_entries
					WHERE wallet_id = ?
					ORDER BY year DESC, month DESC
					LIMIT 1`, *alert.WalletID,
				).Scan(&value)
				if scanErr == nil {
					current = &value
				} else if scanErr != sql.ErrNoRows {
					err = scanErr
					return nil, err
				}
			} else {
				current = input.CurrentPortfolioValue
			}
		case models.AlertTypeVariationPercent:
			current = input.Variation24h
		case models.AlertTypeBTCPrice:
			current = input.CurrentBTCPrice
		}

		// Sin valor actual no hay nada que evaluar: la alerta queda como está
		if current == nil {
			continue
		}

		fired := false
		switch alert.Condition {
		case models.AlertConditionAbove:
			fired = *current >= alert.Threshold
		case models.AlertConditionBelow:
			fired = *current <= alert.Threshold
		}
		if !fired {
			continue
		}

		now := time.Now().UTC()
		if _, err = tx.Exec(`
			UPDATE alerts SET triggered_at = ?, is_active = 0 WHERE id = ?`,
			now, alert.ID,
		); err != nil {
			return nil, err
		}

		triggered = append(triggered, models.TriggeredAlert{
			ID:           alert.ID,
			Name:         alert.Name,
			AlertType:    alert.AlertType,
			Condition:    alert.Condition,
			Threshold:    alert.Threshold,
			CurrentValue: *current,
			TriggeredAt:  now,
		})
	}

	return &models.AlertCheckResult{
		TriggeredCount: len(triggered),
		Alerts:         triggered,
	}, nil
}
