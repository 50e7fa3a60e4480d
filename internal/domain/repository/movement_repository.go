package repository

import "github.com/jhoicas/Despensa-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el ledger de
// movimientos. Append-only: no hay Update, solo Create y Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// List devuelve todos los movimientos, más recientes primero (created_at desc).
	List(limit, offset int) ([]*entity.Movement, error)
	// ListByIngredient filtra por ingredient_id, más recientes primero.
	ListByIngredient(ingredientID string, limit, offset int) ([]*entity.Movement, error)
	Delete(id string) error
}
