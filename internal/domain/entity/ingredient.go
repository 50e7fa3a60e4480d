package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa un ingrediente de la despensa con su stock actual.
// StockQuantity solo cambia vía el ledger de movimientos o por un override
// administrativo explícito (update); nunca queda en negativo por un movimiento.
type Ingredient struct {
	ID            string
	Name          string
	Unit          string          // unidad de medida libre: "kg", "lt", "und"
	StockQuantity decimal.Decimal // invariante: saldo inicial + entradas - salidas
	UnitCost      decimal.Decimal // costo unitario, siempre > 0
	MinimumStock  decimal.Decimal // umbral de stock bajo
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock indica si el ingrediente está en o bajo su stock mínimo.
func (i *Ingredient) IsLowStock() bool {
	return i.StockQuantity.LessThanOrEqual(i.MinimumStock)
}

// StockValue devuelve el valor del stock actual (cantidad * costo unitario).
func (i *Ingredient) StockValue() decimal.Decimal {
	return i.StockQuantity.Mul(i.UnitCost)
}
