package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest body para POST /api/ingredients.
// StockQuantity es opcional (default 0); UnitCost debe ser > 0.
type CreateIngredientRequest struct {
	Name          string           `json:"ingredient_name"`
	Unit          string           `json:"unit"`
	StockQuantity *decimal.Decimal `json:"stock_quantity,omitempty"`
	UnitCost      decimal.Decimal  `json:"unit_cost"`
	MinimumStock  *decimal.Decimal `json:"minimum_stock,omitempty"`
}

// UpdateIngredientRequest body para PUT /api/ingredients/:id.
// StockQuantity aquí es un override administrativo explícito, NO pasa por el
// ledger (la acción requiere permiso "update").
type UpdateIngredientRequest struct {
	Name          string           `json:"ingredient_name"`
	Unit          string           `json:"unit"`
	StockQuantity *decimal.Decimal `json:"stock_quantity,omitempty"`
	UnitCost      decimal.Decimal  `json:"unit_cost"`
	MinimumStock  *decimal.Decimal `json:"minimum_stock,omitempty"`
}

// IngredientResponse representación HTTP de un ingrediente.
type IngredientResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"ingredient_name"`
	Unit          string          `json:"unit"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	MinimumStock  decimal.Decimal `json:"minimum_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IngredientListResponse listado de ingredientes.
type IngredientListResponse struct {
	Total       int                   `json:"total"`
	Ingredients []*IngredientResponse `json:"ingredients"`
}
