package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet representa una billetera de criptomonedas (Solana, Degen, Rabby, etc.)
type Wallet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" binding:"required,min=1,max=100"`
	Description string    `json:"description"`
	Color       string    `json:"color" binding:"omitempty,hexcolor"`
	CreatedAt   time.Time `json:"created_at"`
}

// WalletUpdate contiene los campos modificables de una billetera.
// Los punteros distinguen "no enviado" de "enviado vacío".
type WalletUpdate struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
}

// DefaultWalletColor es el color que se asigna cuando no se indica uno
const DefaultWalletColor = "#3b82f6"

// GenerateID genera un ID único para cualquier registro
func GenerateID() string {
	return uuid.NewString()
}
