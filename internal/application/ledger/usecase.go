// Package ledger implementa el libro de movimientos de stock: cada entrada o
// salida queda registrada como un movimiento inmutable y el stock del
// ingrediente se mantiene siempre igual al efecto neto de su historial.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/policy"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// MovementLedger registra movimientos de inventario de forma transaccional
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type MovementLedger struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewMovementLedger construye el ledger. movRepo se usa solo para lecturas
// fuera de transacción; las escrituras pasan por el TxRunner.
func NewMovementLedger(txRunner TxRunner, movRepo repository.MovementRepository) *MovementLedger {
	return &MovementLedger{txRunner: txRunner, movRepo: movRepo}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	IngredientID string
	Type         string // in | out
	Quantity     decimal.Decimal
	Reason       string
	Notes        string
	ActingRole   string // role_name del caller, evaluado contra policy
	ActingUserID string
}

// CreateMovement valida rol y cantidad, y dentro de una transacción: bloquea
// la fila del ingrediente, re-verifica el stock bajo el lock, inserta el
// movimiento y escribe el nuevo stock. Todo se confirma o nada.
//
// Errores: ErrInvalidInput (tipo o cantidad inválidos), ErrForbidden (rol sin
// create_movement), ErrNotFound (ingrediente inexistente),
// InsufficientStockError (la salida dejaría el stock negativo; incluye stock
// actual y máximo retirable).
func (l *MovementLedger) CreateMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if !entity.IsValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.IngredientID == "" || !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	// El gate de permisos es previo a cualquier lectura: sin create_movement
	// no se toca el estado.
	if !policy.HasPermission(input.ActingRole, policy.ActionCreateMovement) {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	movement := &entity.Movement{
		ID:           uuid.New().String(),
		IngredientID: input.IngredientID,
		Type:         input.Type,
		Quantity:     input.Quantity,
		Reason:       input.Reason,
		Notes:        input.Notes,
		CreatedAt:    now,
		CreatedBy:    input.ActingUserID,
	}

	err := l.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		ingredientRepo repository.IngredientRepository,
	) error {
		// Bloquea la fila del ingrediente: el chequeo de stock y la escritura
		// quedan serializados frente a movimientos concurrentes del mismo
		// ingrediente (sin lost updates).
		ingredient, err := ingredientRepo.GetForUpdate(input.IngredientID)
		if err != nil {
			return err
		}
		if ingredient == nil {
			return domain.ErrNotFound
		}

		var newStock decimal.Decimal
		switch input.Type {
		case entity.MovementTypeOut:
			newStock = ingredient.StockQuantity.Sub(input.Quantity)
			if newStock.IsNegative() {
				return domain.NewInsufficientStockError(
					ingredient.ID, ingredient.StockQuantity, input.Quantity)
			}
		case entity.MovementTypeIn:
			newStock = ingredient.StockQuantity.Add(input.Quantity)
		}

		if err := movRepo.Create(movement); err != nil {
			return err
		}
		return ingredientRepo.UpdateStock(ingredient.ID, newStock, now)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// DeleteMovement elimina el registro del movimiento SIN revertir su efecto
// sobre el stock. El borrado es una corrección del log, no un deshacer:
// para revertir el efecto usar CompensateMovement.
func (l *MovementLedger) DeleteMovement(ctx context.Context, id, actingRole string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if !policy.HasPermission(actingRole, policy.ActionDelete) {
		return domain.ErrForbidden
	}
	movement, err := l.movRepo.GetByID(id)
	if err != nil {
		return err
	}
	if movement == nil {
		return domain.ErrNotFound
	}
	return l.movRepo.Delete(id)
}

// CompensateMovement registra el movimiento inverso de uno existente:
// una entrada por cada salida y viceversa, con la misma cantidad. Es la
// corrección explícita coherente con un ledger append-only.
func (l *MovementLedger) CompensateMovement(ctx context.Context, id, actingRole, actingUserID string) (*entity.Movement, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	original, err := l.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrNotFound
	}

	inverse := entity.MovementTypeIn
	if original.Type == entity.MovementTypeIn {
		inverse = entity.MovementTypeOut
	}
	return l.CreateMovement(ctx, MovementInput{
		IngredientID: original.IngredientID,
		Type:         inverse,
		Quantity:     original.Quantity,
		Reason:       "compensación de " + original.ID,
		ActingRole:   actingRole,
		ActingUserID: actingUserID,
	})
}

// ListMovements devuelve el historial completo, más recientes primero.
func (l *MovementLedger) ListMovements(ctx context.Context, actingRole string, limit, offset int) ([]*entity.Movement, error) {
	if !policy.HasPermission(actingRole, policy.ActionRead) {
		return nil, domain.ErrForbidden
	}
	return l.movRepo.List(limit, offset)
}

// ListByIngredient devuelve el historial de un ingrediente, más recientes primero.
func (l *MovementLedger) ListByIngredient(ctx context.Context, actingRole, ingredientID string, limit, offset int) ([]*entity.Movement, error) {
	if !policy.HasPermission(actingRole, policy.ActionRead) {
		return nil, domain.ErrForbidden
	}
	if ingredientID == "" {
		return nil, domain.ErrInvalidInput
	}
	return l.movRepo.ListByIngredient(ingredientID, limit, offset)
}
