package report

import (
	"context"
	"time"

	"github.com/jhoicas/Despensa-api/internal/application/analytics"
	"github.com/jhoicas/Despensa-api/internal/application/dto"
)

// PDFGenerator puerto hacia la infraestructura de PDF (Maroto).
type PDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, data InventoryReportData) ([]byte, error)
}

// InventoryReportData todo lo que el PDF necesita, ya calculado.
type InventoryReportData struct {
	GeneratedAt time.Time
	Ingredients *dto.IngredientListResponse
	Summary     *dto.InventorySummaryDTO
	LowStock    []*dto.LowStockItemDTO
}

// ingredientLister contrato mínimo para obtener el snapshot (lo implementa
// *usecase.IngredientUseCase; la interfaz evita el import circular).
type ingredientLister interface {
	List() (*dto.IngredientListResponse, error)
}

// InventoryReportUseCase arma el reporte de valorización + stock bajo y
// delega el render al generador.
type InventoryReportUseCase struct {
	ingredients ingredientLister
	analytics   *analytics.InventoryAnalytics
	generator   PDFGenerator
}

// NewInventoryReportUseCase construye el caso de uso.
func NewInventoryReportUseCase(
	ingredients ingredientLister,
	analyticsUC *analytics.InventoryAnalytics,
	generator PDFGenerator,
) *InventoryReportUseCase {
	return &InventoryReportUseCase{
		ingredients: ingredients,
		analytics:   analyticsUC,
		generator:   generator,
	}
}

// GeneratePDF arma los datos del reporte y devuelve los bytes del PDF.
func (uc *InventoryReportUseCase) GeneratePDF(ctx context.Context) ([]byte, error) {
	list, err := uc.ingredients.List()
	if err != nil {
		return nil, err
	}
	summary, err := uc.analytics.Summary()
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.analytics.LowStock()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInventoryPDF(ctx, InventoryReportData{
		GeneratedAt: time.Now(),
		Ingredients: list,
		Summary:     summary,
		LowStock:    lowStock,
	})
}
