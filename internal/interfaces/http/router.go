package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/analytics"
	"github.com/jhoicas/Despensa-api/internal/application/auth"
	"github.com/jhoicas/Despensa-api/internal/application/ledger"
	"github.com/jhoicas/Despensa-api/internal/application/report"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	IngredientUC *usecase.IngredientUseCase
	Ledger       *ledger.MovementLedger
	AnalyticsUC  *analytics.InventoryAnalytics
	ReportUC     *report.InventoryReportUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Cada ruta protegida declara la acción
// que exige; los casos de uso re-verifican el permiso con la misma tabla.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ingredientes (protegido)
	ingredients := protected.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	movementHandler := NewMovementHandler(deps.Ledger)
	ingredients.Get("/", RequireAction(policy.ActionRead), ingredientHandler.List)
	ingredients.Get("/search", RequireAction(policy.ActionRead), ingredientHandler.Search)
	ingredients.Get("/:id", RequireAction(policy.ActionRead), ingredientHandler.GetByID)
	ingredients.Get("/:id/movements", RequireAction(policy.ActionRead), movementHandler.ListByIngredient)
	ingredients.Post("/", RequireAction(policy.ActionInventory), ingredientHandler.Create)
	ingredients.Put("/:id", RequireAction(policy.ActionUpdate), ingredientHandler.Update)
	ingredients.Delete("/:id", RequireAction(policy.ActionDelete), ingredientHandler.Delete)

	// Ledger de movimientos (protegido)
	movements := protected.Group("/movements")
	movements.Get("/", RequireAction(policy.ActionRead), movementHandler.List)
	movements.Post("/", RequireAction(policy.ActionCreateMovement), movementHandler.Create)
	movements.Delete("/:id", RequireAction(policy.ActionDelete), movementHandler.Delete)
	movements.Post("/:id/compensate", RequireAction(policy.ActionCreateMovement), movementHandler.Compensate)

	// Analytics (protegido, solo lectura)
	analyticsGroup := protected.Group("/analytics", RequireAction(policy.ActionRead))
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analyticsGroup.Get("/low-stock", analyticsHandler.LowStock)
	analyticsGroup.Get("/stock-value", analyticsHandler.StockValue)
	analyticsGroup.Get("/summary", analyticsHandler.Summary)

	// Reportes (protegido)
	reports := protected.Group("/reports", RequireAction(policy.ActionRead))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory.pdf", reportHandler.InventoryPDF)
}
