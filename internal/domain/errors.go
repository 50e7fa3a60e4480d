package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrTransient          = errors.New("almacenamiento no disponible, reintente")
)

// InsufficientStockError indica que una salida dejaría el stock en negativo.
// Incluye el stock actual y el máximo retirable para que el caller pueda
// corregir la petición sin volver a consultar.
type InsufficientStockError struct {
	IngredientID string
	Current      decimal.Decimal
	MaxRemovable decimal.Decimal
	Requested    decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: stock actual %s, no se puede retirar %s (máximo %s)",
		e.Current.StringFixed(2), e.Requested.StringFixed(2), e.MaxRemovable.StringFixed(2))
}

// Is permite errors.Is(err, domain.ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// NewInsufficientStockError construye el error; el máximo retirable es el stock actual.
func NewInsufficientStockError(ingredientID string, current, requested decimal.Decimal) *InsufficientStockError {
	return &InsufficientStockError{
		IngredientID: ingredientID,
		Current:      current,
		MaxRemovable: current,
		Requested:    requested,
	}
}
