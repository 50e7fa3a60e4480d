package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación de IngredientRepository sobre PostgreSQL
// (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

const ingredientColumns = `id, ingredient_name, unit, stock_quantity, unit_cost, minimum_stock, created_at, updated_at`

// Create persiste un nuevo ingrediente.
func (r *IngredientRepo) Create(ingredient *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (` + ingredientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		ingredient.ID, ingredient.Name, ingredient.Unit,
		ingredient.StockQuantity, ingredient.UnitCost, ingredient.MinimumStock,
		ingredient.CreatedAt, ingredient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create ingredient: %w", classifyError(err))
	}
	return nil
}

// GetByID obtiene un ingrediente por ID. Retorna nil sin error si no existe.
func (r *IngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el ingrediente y bloquea la fila (SELECT FOR UPDATE).
// El chequeo de stock y la escritura posterior quedan serializados frente a
// movimientos concurrentes del mismo ingrediente.
func (r *IngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *IngredientRepo) scanOne(query string, id string) (*entity.Ingredient, error) {
	var i entity.Ingredient
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Name, &i.Unit, &i.StockQuantity, &i.UnitCost, &i.MinimumStock,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", classifyError(err))
	}
	return &i, nil
}

// Update escribe todos los campos editables del ingrediente.
func (r *IngredientRepo) Update(ingredient *entity.Ingredient) error {
	query := `
		UPDATE ingredients
		SET ingredient_name = $2, unit = $3, stock_quantity = $4, unit_cost = $5,
		    minimum_stock = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		ingredient.ID, ingredient.Name, ingredient.Unit,
		ingredient.StockQuantity, ingredient.UnitCost, ingredient.MinimumStock,
		ingredient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ingredient: %w", classifyError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update ingredient %s: no existe", ingredient.ID)
	}
	return nil
}

// UpdateStock escribe la nueva cantidad de stock y updated_at.
func (r *IngredientRepo) UpdateStock(id string, quantity decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE ingredients SET stock_quantity = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, quantity, updatedAt)
	if err != nil {
		return fmt.Errorf("update stock: %w", classifyError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update stock %s: no existe", id)
	}
	return nil
}

// List devuelve el snapshot completo, ordenado por nombre.
func (r *IngredientRepo) List() ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY ingredient_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", classifyError(err))
	}
	defer rows.Close()
	var list []*entity.Ingredient
	for rows.Next() {
		var i entity.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.Unit, &i.StockQuantity, &i.UnitCost,
			&i.MinimumStock, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina el ingrediente. No toca los movimientos: el historial del
// ledger queda huérfano a propósito.
func (r *IngredientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", classifyError(err))
	}
	return nil
}
