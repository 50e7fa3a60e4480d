package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger de movimientos sobre PostgreSQL
// (usable con pool o tx). Append-only: no hay UPDATE sobre esta tabla.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, ingredient_id, movement_type, quantity, reason, notes, created_at, created_by`

// Create persiste un movimiento del ledger.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO ingredient_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	createdBy := (*string)(nil)
	if movement.CreatedBy != "" {
		createdBy = &movement.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.IngredientID, movement.Type, movement.Quantity,
		movement.Reason, movement.Notes, movement.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", classifyError(err))
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Retorna nil sin error si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM ingredient_movements WHERE id = $1`
	var m entity.Movement
	var createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.IngredientID, &m.Type, &m.Quantity, &m.Reason, &m.Notes,
		&m.CreatedAt, &createdBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", classifyError(err))
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	return &m, nil
}

// List devuelve todos los movimientos, más recientes primero.
func (r *MovementRepo) List(limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + ` FROM ingredient_movements
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanList(query, normalizeLimit(limit), offset)
}

// ListByIngredient filtra por ingredient_id, más recientes primero.
func (r *MovementRepo) ListByIngredient(ingredientID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + ` FROM ingredient_movements
		WHERE ingredient_id = $3
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanList(query, normalizeLimit(limit), offset, ingredientID)
}

func (r *MovementRepo) scanList(query string, limit, offset int, extra ...any) ([]*entity.Movement, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", classifyError(err))
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var createdBy *string
		if err := rows.Scan(&m.ID, &m.IngredientID, &m.Type, &m.Quantity,
			&m.Reason, &m.Notes, &m.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina el registro del movimiento. El efecto sobre el stock NO se
// revierte aquí: eso es decisión del ledger (corrección de log).
func (r *MovementRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM ingredient_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", classifyError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete movement %s: no existe", id)
	}
	return nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 200 {
		return 200
	}
	return limit
}
