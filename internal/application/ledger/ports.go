package ledger

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el alta del movimiento y la
// escritura del nuevo stock se confirman como una sola unidad (o ninguna).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		ingredientRepo repository.IngredientRepository,
	) error) error
}
