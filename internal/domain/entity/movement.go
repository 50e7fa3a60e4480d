package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del ledger.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// Movement es un registro inmutable del ledger: una entrada o salida de stock
// contra exactamente un ingrediente. Una vez creado nunca se modifica; las
// correcciones se hacen con un movimiento compensatorio o con borrado explícito
// (que NO revierte el efecto sobre el stock, semántica de log de auditoría).
type Movement struct {
	ID           string
	IngredientID string
	Type         string          // in | out
	Quantity     decimal.Decimal // siempre positiva; el signo lo da Type
	Reason       string
	Notes        string
	CreatedAt    time.Time
	CreatedBy    string // UserID, vacío si no aplica
}

// IsValidMovementType valida el tipo de movimiento.
func IsValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut
}
