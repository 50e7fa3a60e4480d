package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/report"
)

// ReportHandler sirve el reporte PDF del inventario.
type ReportHandler struct {
	uc *report.InventoryReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.InventoryReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryPDF godoc
// @Summary      Reporte PDF del inventario
// @Description  Valorización completa más la sección de stock bajo.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.GeneratePDF(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	filename := fmt.Sprintf("inventario-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
