package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest body para POST /api/movements.
type CreateMovementRequest struct {
	IngredientID string          `json:"ingredient_id"`
	Type         string          `json:"movement_type"` // in | out
	Quantity     decimal.Decimal `json:"quantity"`
	Reason       string          `json:"reason,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// MovementResponse representación HTTP de un movimiento del ledger.
type MovementResponse struct {
	ID           string          `json:"id"`
	IngredientID string          `json:"ingredient_id"`
	Type         string          `json:"movement_type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Reason       string          `json:"reason,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	CreatedBy    string          `json:"created_by,omitempty"`
}

// MovementListResponse listado de movimientos (más recientes primero).
type MovementListResponse struct {
	Total     int                 `json:"total"`
	Movements []*MovementResponse `json:"movements"`
}

// InsufficientStockResponse cuerpo de error 409 para salidas que dejarían
// el stock en negativo. MaxRemovable permite corregir sin re-consultar.
type InsufficientStockResponse struct {
	Code         string          `json:"code"`
	Message      string          `json:"message"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MaxRemovable decimal.Decimal `json:"max_removable"`
}
