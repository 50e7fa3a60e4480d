package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// IngredientUseCase casos de uso CRUD para ingredientes. El stock se maneja
// vía el ledger de movimientos; el update de stock aquí es un override
// administrativo explícito (la ruta exige permiso "update").
type IngredientUseCase struct {
	repo repository.IngredientRepository
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo}
}

// Create crea un ingrediente. Stock por defecto 0; unit_cost debe ser > 0.
func (uc *IngredientUseCase) Create(in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.UnitCost.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	stock := decimal.Zero
	if in.StockQuantity != nil {
		if in.StockQuantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		stock = *in.StockQuantity
	}
	minimum := decimal.Zero
	if in.MinimumStock != nil {
		if in.MinimumStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		minimum = *in.MinimumStock
	}
	now := time.Now()
	ingredient := &entity.Ingredient{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Unit:          in.Unit,
		StockQuantity: stock,
		UnitCost:      in.UnitCost,
		MinimumStock:  minimum,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ingredient); err != nil {
		return nil, err
	}
	return toIngredientResponse(ingredient), nil
}

// GetByID obtiene un ingrediente por ID. Retorna nil sin error si no existe.
func (uc *IngredientUseCase) GetByID(id string) (*dto.IngredientResponse, error) {
	ingredient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, nil
	}
	return toIngredientResponse(ingredient), nil
}

// Update actualiza un ingrediente existente y sella updated_at.
// El cambio de stock aquí NO pasa por el ledger (override administrativo).
func (uc *IngredientUseCase) Update(id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ingredient, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.UnitCost.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	ingredient.Name = in.Name
	ingredient.Unit = in.Unit
	ingredient.UnitCost = in.UnitCost
	if in.StockQuantity != nil {
		if in.StockQuantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ingredient.StockQuantity = *in.StockQuantity
	}
	if in.MinimumStock != nil {
		if in.MinimumStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ingredient.MinimumStock = *in.MinimumStock
	}
	ingredient.UpdatedAt = time.Now()
	if err := uc.repo.Update(ingredient); err != nil {
		return nil, err
	}
	return toIngredientResponse(ingredient), nil
}

// List devuelve el snapshot completo de ingredientes.
func (uc *IngredientUseCase) List() (*dto.IngredientListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.IngredientResponse, 0, len(list))
	for _, ingredient := range list {
		out = append(out, toIngredientResponse(ingredient))
	}
	return &dto.IngredientListResponse{Total: len(out), Ingredients: out}, nil
}

// SearchByName busca ingredientes por nombre, insensible a mayúsculas y
// acentos ("azucar" encuentra "Azúcar").
func (uc *IngredientUseCase) SearchByName(q string) (*dto.IngredientListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	needle := foldName(q)
	out := make([]*dto.IngredientResponse, 0)
	for _, ingredient := range list {
		if needle == "" || strings.Contains(foldName(ingredient.Name), needle) {
			out = append(out, toIngredientResponse(ingredient))
		}
	}
	return &dto.IngredientListResponse{Total: len(out), Ingredients: out}, nil
}

// Delete elimina el ingrediente. No borra sus movimientos: el historial del
// ledger se conserva aunque quede huérfano.
func (uc *IngredientUseCase) Delete(id string) error {
	ingredient, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ingredient == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// foldName normaliza para búsqueda: minúsculas y sin marcas diacríticas (NFD).
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

func toIngredientResponse(i *entity.Ingredient) *dto.IngredientResponse {
	return &dto.IngredientResponse{
		ID:            i.ID,
		Name:          i.Name,
		Unit:          i.Unit,
		StockQuantity: i.StockQuantity,
		UnitCost:      i.UnitCost,
		MinimumStock:  i.MinimumStock,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}
