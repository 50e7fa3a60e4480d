// Package analytics contiene las agregaciones de solo lectura sobre el
// snapshot actual de ingredientes: stock bajo, valor del inventario y
// resumen para el dashboard. No escribe nada; la frescura es "al último
// List del repositorio".
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

const summaryTopIngredients = 5 // top-N del widget del dashboard

var oneHundred = decimal.NewFromInt(100)

// InventoryAnalytics cálculos read-side sobre el repositorio de ingredientes.
type InventoryAnalytics struct {
	repo repository.IngredientRepository
}

// NewInventoryAnalytics construye el caso de uso.
func NewInventoryAnalytics(repo repository.IngredientRepository) *InventoryAnalytics {
	return &InventoryAnalytics{repo: repo}
}

// LowStock devuelve los ingredientes con stock_quantity <= minimum_stock,
// con su ratio de criticidad, ordenados del más crítico al menos.
func (a *InventoryAnalytics) LowStock() ([]*dto.LowStockItemDTO, error) {
	list, err := a.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LowStockItemDTO, 0)
	for _, ing := range list {
		if !ing.IsLowStock() {
			continue
		}
		out = append(out, &dto.LowStockItemDTO{
			ID:               ing.ID,
			Name:             ing.Name,
			Unit:             ing.Unit,
			StockQuantity:    ing.StockQuantity,
			MinimumStock:     ing.MinimumStock,
			CriticalityRatio: CriticalityRatio(ing),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CriticalityRatio.Equal(out[j].CriticalityRatio) {
			return out[i].CriticalityRatio.LessThan(out[j].CriticalityRatio)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CriticalityRatio devuelve stock/mínimo * 100. Con mínimo 0 el ratio es 0
// (centinela "crítico"), nunca se divide por cero.
func CriticalityRatio(ing *entity.Ingredient) decimal.Decimal {
	if ing.MinimumStock.IsZero() {
		return decimal.Zero
	}
	return ing.StockQuantity.Div(ing.MinimumStock).Mul(oneHundred)
}

// StockValue devuelve Σ stock_quantity * unit_cost sobre todos los ingredientes.
func (a *InventoryAnalytics) StockValue() (decimal.Decimal, error) {
	list, err := a.repo.List()
	if err != nil {
		return decimal.Zero, err
	}
	return stockValueOf(list), nil
}

// TopByValue devuelve los n ingredientes de mayor valor de stock, descendente,
// con desempate estable por ID.
func (a *InventoryAnalytics) TopByValue(n int) ([]*dto.TopValueItemDTO, error) {
	list, err := a.repo.List()
	if err != nil {
		return nil, err
	}
	return topByValueOf(list, n), nil
}

// AverageCost devuelve StockValue / número de ingredientes; 0 si no hay ninguno.
func (a *InventoryAnalytics) AverageCost() (decimal.Decimal, error) {
	list, err := a.repo.List()
	if err != nil {
		return decimal.Zero, err
	}
	return averageCostOf(list), nil
}

// Summary arma el resumen del dashboard en una sola pasada sobre el snapshot.
func (a *InventoryAnalytics) Summary() (*dto.InventorySummaryDTO, error) {
	list, err := a.repo.List()
	if err != nil {
		return nil, err
	}
	lowCount := 0
	for _, ing := range list {
		if ing.IsLowStock() {
			lowCount++
		}
	}
	return &dto.InventorySummaryDTO{
		TotalIngredients: len(list),
		LowStockCount:    lowCount,
		TotalStockValue:  stockValueOf(list),
		AverageCost:      averageCostOf(list),
		TopByValue:       topByValueOf(list, summaryTopIngredients),
	}, nil
}

func stockValueOf(list []*entity.Ingredient) decimal.Decimal {
	total := decimal.Zero
	for _, ing := range list {
		total = total.Add(ing.StockValue())
	}
	return total
}

func averageCostOf(list []*entity.Ingredient) decimal.Decimal {
	if len(list) == 0 {
		return decimal.Zero
	}
	return stockValueOf(list).Div(decimal.NewFromInt(int64(len(list))))
}

func topByValueOf(list []*entity.Ingredient, n int) []*dto.TopValueItemDTO {
	sorted := append([]*entity.Ingredient(nil), list...)
	sort.SliceStable(sorted, func(i, j int) bool {
		vi, vj := sorted[i].StockValue(), sorted[j].StockValue()
		if !vi.Equal(vj) {
			return vi.GreaterThan(vj)
		}
		return sorted[i].ID < sorted[j].ID
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	out := make([]*dto.TopValueItemDTO, 0, n)
	for _, ing := range sorted[:n] {
		out = append(out, &dto.TopValueItemDTO{
			ID:            ing.ID,
			Name:          ing.Name,
			StockQuantity: ing.StockQuantity,
			UnitCost:      ing.UnitCost,
			StockValue:    ing.StockValue(),
		})
	}
	return out
}
