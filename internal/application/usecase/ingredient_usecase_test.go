package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// fakeRepo repositorio de ingredientes en memoria para los tests del CRUD.
type fakeRepo struct {
	byID map[string]*entity.Ingredient
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]*entity.Ingredient{}}
}

func (r *fakeRepo) Create(ing *entity.Ingredient) error {
	cp := *ing
	r.byID[ing.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(id string) (*entity.Ingredient, error) {
	ing, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *ing
	return &cp, nil
}

func (r *fakeRepo) GetForUpdate(id string) (*entity.Ingredient, error) { return r.GetByID(id) }

func (r *fakeRepo) Update(ing *entity.Ingredient) error {
	if _, ok := r.byID[ing.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *ing
	r.byID[ing.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateStock(id string, qty decimal.Decimal, updatedAt time.Time) error {
	ing, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	ing.StockQuantity = qty
	ing.UpdatedAt = updatedAt
	return nil
}

func (r *fakeRepo) List() ([]*entity.Ingredient, error) {
	out := make([]*entity.Ingredient, 0, len(r.byID))
	for _, ing := range r.byID {
		cp := *ing
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestCreate_DefaultsYTimestamps(t *testing.T) {
	uc := usecase.NewIngredientUseCase(newFakeRepo())

	out, err := uc.Create(dto.CreateIngredientRequest{
		Name:     "Harina de trigo",
		Unit:     "kg",
		UnitCost: dec("2.5"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.True(t, out.StockQuantity.IsZero(), "stock por defecto 0")
	assert.True(t, out.MinimumStock.IsZero())
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, out.CreatedAt, out.UpdatedAt)
}

func TestCreate_UnitCostInvalido(t *testing.T) {
	uc := usecase.NewIngredientUseCase(newFakeRepo())

	for _, cost := range []string{"0", "-1"} {
		_, err := uc.Create(dto.CreateIngredientRequest{
			Name: "Sal", Unit: "kg", UnitCost: dec(cost),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreate_StockInicialExplicito(t *testing.T) {
	uc := usecase.NewIngredientUseCase(newFakeRepo())

	out, err := uc.Create(dto.CreateIngredientRequest{
		Name: "Azúcar", Unit: "kg", UnitCost: dec("1.2"),
		StockQuantity: decPtr("30"), MinimumStock: decPtr("10"),
	})
	require.NoError(t, err)
	assert.True(t, out.StockQuantity.Equal(dec("30")))
	assert.True(t, out.MinimumStock.Equal(dec("10")))
}

func TestUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewIngredientUseCase(newFakeRepo())

	_, err := uc.Update("no-existe", dto.UpdateIngredientRequest{
		Name: "X", Unit: "kg", UnitCost: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_OverrideDeStockYSelloDeFecha(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewIngredientUseCase(repo)

	created, err := uc.Create(dto.CreateIngredientRequest{
		Name: "Harina", Unit: "kg", UnitCost: dec("2"), StockQuantity: decPtr("10"),
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateIngredientRequest{
		Name: "Harina integral", Unit: "kg", UnitCost: dec("2.8"),
		StockQuantity: decPtr("99"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Harina integral", out.Name)
	assert.True(t, out.StockQuantity.Equal(dec("99")), "override administrativo directo")
	assert.True(t, out.UpdatedAt.After(created.UpdatedAt) || out.UpdatedAt.Equal(created.UpdatedAt))
}

func TestDelete_NoExiste(t *testing.T) {
	uc := usecase.NewIngredientUseCase(newFakeRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

func TestSearchByName_IgnoraMayusculasYAcentos(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewIngredientUseCase(repo)

	for _, name := range []string{"Azúcar morena", "Sal marina", "Café molido"} {
		_, err := uc.Create(dto.CreateIngredientRequest{Name: name, Unit: "kg", UnitCost: dec("1")})
		require.NoError(t, err)
	}

	out, err := uc.SearchByName("azucar")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Azúcar morena", out.Ingredients[0].Name)

	out, err = uc.SearchByName("CAFE")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Café molido", out.Ingredients[0].Name)
}
