package dto

import "github.com/shopspring/decimal"

// LowStockItemDTO un ingrediente en o bajo su stock mínimo, con su ratio de
// criticidad (stock/mínimo * 100; 0 cuando el mínimo es 0 = crítico).
type LowStockItemDTO struct {
	ID               string          `json:"id"`
	Name             string          `json:"ingredient_name"`
	Unit             string          `json:"unit"`
	StockQuantity    decimal.Decimal `json:"stock_quantity"`
	MinimumStock     decimal.Decimal `json:"minimum_stock"`
	CriticalityRatio decimal.Decimal `json:"criticality_ratio"` // porcentaje
}

// TopValueItemDTO un ingrediente en el top-N por valor de stock.
type TopValueItemDTO struct {
	ID            string          `json:"id"`
	Name          string          `json:"ingredient_name"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	StockValue    decimal.Decimal `json:"stock_value"`
}

// StockValueResponse valor total del inventario.
type StockValueResponse struct {
	TotalValue decimal.Decimal `json:"total_value"`
}

// InventorySummaryDTO resumen para el dashboard: conteos, valor total y
// top de ingredientes por valor.
type InventorySummaryDTO struct {
	TotalIngredients int                `json:"total_ingredients"`
	LowStockCount    int                `json:"low_stock_count"`
	TotalStockValue  decimal.Decimal    `json:"total_stock_value"`
	AverageCost      decimal.Decimal    `json:"average_cost"`
	TopByValue       []*TopValueItemDTO `json:"top_by_value"`
}
