package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para Ingredient (DIP).
type IngredientRepository interface {
	Create(ingredient *entity.Ingredient) error
	GetByID(id string) (*entity.Ingredient, error)
	// GetForUpdate obtiene el ingrediente bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción del TxRunner.
	GetForUpdate(id string) (*entity.Ingredient, error)
	Update(ingredient *entity.Ingredient) error
	// UpdateStock escribe la nueva cantidad de stock y updated_at.
	UpdateStock(id string, quantity decimal.Decimal, updatedAt time.Time) error
	List() ([]*entity.Ingredient, error)
	Delete(id string) error
}
