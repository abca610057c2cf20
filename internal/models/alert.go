package models

import "time"

// Tipos de alerta soportados
const (
	AlertTypeValueThreshold   = "value_threshold"
	AlertTypeVariationPercent = "variation_percent"
	AlertTypeBTCPrice         = "btc_price"
)

// Condiciones de disparo
const (
	AlertConditionAbove = "above"
	AlertConditionBelow = "below"
)

// Alert define una regla de notificación sobre el portafolio o una billetera.
// WalletID nulo significa que la alerta es global.
// Ciclo de vida: activa -> disparada (triggered_at + is_active=false) -> reset.
type Alert struct {
	ID          string     `json:"id"`
	Name        string     `json:"name" binding:"required,min=1,max=100"`
	AlertType   string     `json:"alert_type" binding:"required,oneof=value_threshold variation_percent btc_price"`
	Condition   string     `json:"condition" binding:"required,oneof=above below"`
	Threshold   float64    `json:"threshold"`
	WalletID    *string    `json:"wallet_id"`
	IsActive    bool       `json:"is_active"`
	TriggeredAt *time.Time `json:"triggered_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AlertUpdate contiene los campos modificables de una alerta
type AlertUpdate struct {
	Name      *string  `json:"name" binding:"omitempty,min=1,max=100"`
	AlertType *string  `json:"alert_type" binding:"omitempty,oneof=value_threshold variation_percent btc_price"`
	Condition *string  `json:"condition" binding:"omitempty,oneof=above below"`
	Threshold *float64 `json:"threshold"`
	IsActive  *bool    `json:"is_active"`
}

// AlertCheckInput agrupa los valores actuales contra los que se evalúan
// las reglas. Cada valor es opcional: las reglas sin su valor se saltean.
type AlertCheckInput struct {
	CurrentPortfolioValue *float64
	CurrentBTCPrice       *float64
	Variation24h          *float64
}

// TriggeredAlert es una regla disparada junto con el valor que la disparó
type TriggeredAlert struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	AlertType    string    `json:"alert_type"`
	Condition    string    `json:"condition"`
	Threshold    float64   `json:"threshold"`
	CurrentValue float64   `json:"current_value"`
	TriggeredAt  time.Time `json:"triggered_at"`
}

// AlertCheckResult es el resultado de una pasada de evaluación
type AlertCheckResult struct {
	TriggeredCount int              `json:"triggered_count"`
	Alerts         []TriggeredAlert `json:"alerts"`
}
