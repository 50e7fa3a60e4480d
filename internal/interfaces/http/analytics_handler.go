package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/analytics"
	"github.com/jhoicas/Despensa-api/internal/application/dto"
)

// AnalyticsHandler expone las agregaciones read-only del inventario.
type AnalyticsHandler struct {
	uc *analytics.InventoryAnalytics
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.InventoryAnalytics) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// LowStock godoc
// @Summary      Ingredientes con stock bajo
// @Description  stock_quantity <= minimum_stock, ordenados del más crítico al menos.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockItemDTO
// @Router       /api/analytics/low-stock [get]
func (h *AnalyticsHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.uc.LowStock()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "ingredients": list})
}

// StockValue godoc
// @Summary      Valor total del inventario
// @Description  Σ stock_quantity * unit_cost sobre todos los ingredientes.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockValueResponse
// @Router       /api/analytics/stock-value [get]
func (h *AnalyticsHandler) StockValue(c *fiber.Ctx) error {
	total, err := h.uc.StockValue()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.StockValueResponse{TotalValue: total})
}

// Summary godoc
// @Summary      Resumen del inventario
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryDTO
// @Router       /api/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(summary)
}
