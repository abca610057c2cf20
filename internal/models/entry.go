package models

import "time"

// MonthlyEntry registra el valor de una billetera en un mes calendario.
// La clave (wallet_id, year, month) es única.
type MonthlyEntry struct {
	ID        string    `json:"id"`
	WalletID  string    `json:"wallet_id" binding:"required"`
	Year      int       `json:"year" binding:"required,gte=2000,lte=2100"`
	Month     int       `json:"month" binding:"required,gte=1,lte=12"`
	ValueUSD  float64   `json:"value_usd" binding:"gte=0"`
	BTCPrice  *float64  `json:"btc_price" binding:"omitempty,gte=0"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// MonthlyEntryUpdate contiene los campos modificables de una entrada mensual
type MonthlyEntryUpdate struct {
	ValueUSD *float64 `json:"value_usd" binding:"omitempty,gte=0"`
	BTCPrice *float64 `json:"btc_price" binding:"omitempty,gte=0"`
	Notes    *string  `json:"notes"`
}

// DailyEntry registra el valor de una billetera en un día calendario.
// La fecha se guarda como texto YYYY-MM-DD, clave (wallet_id, date) única.
type DailyEntry struct {
	ID        string    `json:"id"`
	WalletID  string    `json:"wallet_id" binding:"required"`
	Date      string    `json:"date" binding:"required,datetime=2006-01-02"`
	ValueUSD  float64   `json:"value_usd" binding:"gte=0"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyEntryUpdate contiene los campos modificables de una entrada diaria
type DailyEntryUpdate struct {
	ValueUSD *float64 `json:"value_usd" binding:"omitempty,gte=0"`
	Notes    *string  `json:"notes"`
}

// BulkMonthlyEntry permite cargar los valores de varias billeteras
// para un mismo mes en una sola operación
type BulkMonthlyEntry struct {
	Year     int                `json:"year" binding:"required,gte=2000,lte=2100"`
	Month    int                `json:"month" binding:"required,gte=1,lte=12"`
	BTCPrice *float64           `json:"btc_price" binding:"omitempty,gte=0"`
	Entries  []BulkMonthlyValue `json:"entries" binding:"required"`
}

// BulkMonthlyValue es un par billetera/valor dentro de una carga masiva
type BulkMonthlyValue struct {
	WalletID string   `json:"wallet_id"`
	ValueUSD *float64 `json:"value_usd"`
}
