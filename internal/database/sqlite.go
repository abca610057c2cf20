package database

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// InitDB abre la base de datos sqlite y crea el esquema si no existe.
// La ruta se puede configurar con la variable de entorno DB_PATH.
func InitDB() error {
	path := os.Getenv("DB_PATH")
	if path == "" {
		// Crear el directorio database si no existe
		if err := os.MkdirAll("database", 0755); err != nil {
			return err
		}
		path = filepath.Join("database", "tracker.db")
	}

	var err error
	DB, err = sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	if err := CreateSchema(DB); err != nil {
		return err
	}

	// Ejecutar migraciones para actualizar el esquema
	return RunMigrations()
}

// CreateSchema crea todas las tablas del tracker si no existen
func CreateSchema(db *sql.DB) error {
	// Tabla de billeteras
	createWalletsTableSQL := `
	CREATE TABLE IF NOT EXISTS wallets (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		description TEXT,
		color TEXT DEFAULT '#3b82f6',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.Exec(createWalletsTableSQL); err != nil {
		return err
	}

	// Tabla de entradas mensuales, una fila por billetera y mes
	createMonthlyTableSQL := `
	CREATE TABLE IF NOT EXISTS monthly_entries (
		id TEXT PRIMARY KEY,
		wallet_id TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		value_usd REAL NOT NULL,
		btc_price REAL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(wallet_id, year, month),
		FOREIGN KEY(wallet_id) REFERENCES wallets(id)
	);`

	if _, err := db.Exec(createMonthlyTableSQL); err != nil {
		return err
	}

	// Tabla de entradas diarias, la fecha se guarda como texto YYYY-MM-DD
	createDailyTableSQL := `
	CREATE TABLE IF NOT EXISTS daily_entries (
		id TEXT PRIMARY KEY,
		wallet_id TEXT NOT NULL,
		date TEXT NOT NULL,
		value_usd REAL NOT NULL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(wallet_id, date),
		FOREIGN KEY(wallet_id) REFERENCES wallets(id)
	);`

	if _, err := db.Exec(createDailyTableSQL); err != nil {
		return err
	}

	// Tabla de alertas
	createAlertsTableSQL := `
	CREATE TABLE IF NOT EXISTS alerts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		alert_type TEXT NOT NULL,
		condition TEXT NOT NULL,
		threshold REAL NOT NULL,
		wallet_id TEXT,
		is_active INTEGER DEFAULT 1,
		triggered_at DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(wallet_id) REFERENCES wallets(id)
	);`

	if _, err := db.Exec(createAlertsTableSQL); err != nil {
		return err
	}

	// Índices para las consultas de agregación por período
	createIndexesSQL := `
	CREATE INDEX IF NOT EXISTS idx_monthly_entries_period ON monthly_entries(year, month);
	CREATE INDEX IF NOT EXISTS idx_daily_entries_date ON daily_entries(date);`

	_, err := db.Exec(createIndexesSQL)
	return err
}
