package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/ledger"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// MovementHandler maneja las peticiones HTTP del ledger de movimientos.
type MovementHandler struct {
	uc *ledger.MovementLedger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *ledger.MovementLedger) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento de stock
// @Description  Entrada ("in") o salida ("out"). Una salida que dejaría el stock
//
//	en negativo se rechaza con 409 e incluye el máximo retirable.
//
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "ingredient_id, movement_type, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.InsufficientStockResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.uc.CreateMovement(c.Context(), ledger.MovementInput{
		IngredientID: in.IngredientID,
		Type:         in.Type,
		Quantity:     in.Quantity,
		Reason:       in.Reason,
		Notes:        in.Notes,
		ActingRole:   GetRole(c),
		ActingUserID: GetUserID(c),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(movement))
}

// List godoc
// @Summary      Historial de movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de registros (default 50, tope 200)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListMovements(c.Context(), GetRole(c), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toMovementListResponse(list))
}

// ListByIngredient godoc
// @Summary      Historial de un ingrediente
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del ingrediente"
// @Param        limit   query  int     false  "máximo de registros (default 50, tope 200)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/ingredients/{id}/movements [get]
func (h *MovementHandler) ListByIngredient(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListByIngredient(c.Context(), GetRole(c), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toMovementListResponse(list))
}

// Delete godoc
// @Summary      Borrar registro de movimiento
// @Description  Corrección del log: NO revierte el efecto sobre el stock.
//
//	Para revertir el efecto usar el endpoint de compensación.
//
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteMovement(c.Context(), c.Params("id"), GetRole(c)); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento eliminado del historial, stock sin cambios"})
}

// Compensate godoc
// @Summary      Compensar movimiento
// @Description  Registra el movimiento inverso (entrada por salida y viceversa)
//
//	con la misma cantidad. Es la forma de deshacer coherente con un
//	ledger append-only.
//
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento a compensar"
// @Success      201  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.InsufficientStockResponse
// @Router       /api/movements/{id}/compensate [post]
func (h *MovementHandler) Compensate(c *fiber.Ctx) error {
	movement, err := h.uc.CompensateMovement(c.Context(), c.Params("id"), GetRole(c), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(movement))
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:           m.ID,
		IngredientID: m.IngredientID,
		Type:         m.Type,
		Quantity:     m.Quantity,
		Reason:       m.Reason,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		CreatedBy:    m.CreatedBy,
	}
}

func toMovementListResponse(list []*entity.Movement) *dto.MovementListResponse {
	out := make([]*dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return &dto.MovementListResponse{Total: len(out), Movements: out}
}
