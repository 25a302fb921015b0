package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candyycode/pet-store-api/internal/application/dto"
	"github.com/candyycode/pet-store-api/internal/application/usecase"
	"github.com/candyycode/pet-store-api/internal/domain"
)

func int32Ptr(v int32) *int32          { return &v }
func strPtr(s string) *string          { return &s }
func decPtr(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }

func buildProductUseCase() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(newMemProductRepo())
}

func createProductOK(t *testing.T, uc *usecase.ProductUseCase, name, price string) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateProductRequest{
		Name:        name,
		Description: "descripción de " + name,
		Price:       decimal.RequireFromString(price),
		Inventory:   int32Ptr(10),
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_PrecioDecimalExacto(t *testing.T) {
	// "9.99" debe sobrevivir sin convertirse en 9.9899999...
	uc := buildProductUseCase()
	out := createProductOK(t, uc, "cat food", "9.99")

	assert.True(t, out.Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, "9.99", out.Price.String())

	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, "9.99", got.Price.String())
}

func TestCreateProduct_PrecioNegativo_RetornaErrInvalidInput(t *testing.T) {
	uc := buildProductUseCase()
	_, err := uc.Create(dto.CreateProductRequest{
		Name:        "cat toy",
		Description: "ball cat toy",
		Price:       decimal.RequireFromString("-1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProduct_InventarioNegativo_RetornaErrInvalidInput(t *testing.T) {
	uc := buildProductUseCase()
	_, err := uc.Create(dto.CreateProductRequest{
		Name:        "cat toy",
		Description: "ball cat toy",
		Price:       decimal.RequireFromString("1.99"),
		Inventory:   int32Ptr(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProduct_SinInventario_EsValido(t *testing.T) {
	// Inventory nil = producto sin seguimiento de stock.
	uc := buildProductUseCase()
	out, err := uc.Create(dto.CreateProductRequest{
		Name:        "dog collar",
		Description: "premium dog collar",
		Price:       decimal.RequireFromString("19.95"),
	})
	require.NoError(t, err)
	assert.Nil(t, out.Inventory)
}

func TestCreateProduct_NombreVacio_RetornaErrInvalidInput(t *testing.T) {
	uc := buildProductUseCase()
	_, err := uc.Create(dto.CreateProductRequest{
		Name:        "",
		Description: "algo",
		Price:       decimal.RequireFromString("1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetByID / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProduct_Inexistente_RetornaErrNotFound(t *testing.T) {
	uc := buildProductUseCase()
	_, err := uc.GetByID(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProduct_MergeaCamposPresentes(t *testing.T) {
	uc := buildProductUseCase()
	out := createProductOK(t, uc, "dog food", "54.98")

	updated, err := uc.Update(out.ID, dto.UpdateProductRequest{
		Price:     decPtr("49.99"),
		Inventory: int32Ptr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "49.99", updated.Price.String())
	assert.Equal(t, int32(3), *updated.Inventory)
	assert.Equal(t, "dog food", updated.Name, "los campos ausentes no se tocan")
}

func TestUpdateProduct_IdDelPathNoDelPayload(t *testing.T) {
	// El id viene como argumento aparte; un segundo producto no debe verse afectado.
	uc := buildProductUseCase()
	a := createProductOK(t, uc, "cat toy", "1.99")
	b := createProductOK(t, uc, "cat food", "32.99")

	_, err := uc.Update(a.ID, dto.UpdateProductRequest{Name: strPtr("super cat toy")})
	require.NoError(t, err)

	gotB, err := uc.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "cat food", gotB.Name)
}

func TestUpdateProduct_PrecioNegativo_RetornaErrInvalidInput(t *testing.T) {
	uc := buildProductUseCase()
	out := createProductOK(t, uc, "cat toy", "1.99")

	_, err := uc.Update(out.ID, dto.UpdateProductRequest{Price: decPtr("-0.01")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProduct_Inexistente_RetornaErrNotFound(t *testing.T) {
	uc := buildProductUseCase()
	_, err := uc.Update(uuid.New().String(), dto.UpdateProductRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete / List
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProduct_Existente_Elimina(t *testing.T) {
	uc := buildProductUseCase()
	out := createProductOK(t, uc, "cat toy", "1.99")

	require.NoError(t, uc.Delete(out.ID))

	_, err := uc.GetByID(out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProduct_Inexistente_RetornaErrNotFound(t *testing.T) {
	uc := buildProductUseCase()
	err := uc.Delete(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListProducts_RetornaTodos(t *testing.T) {
	uc := buildProductUseCase()
	createProductOK(t, uc, "cat toy", "1.99")
	createProductOK(t, uc, "cat food", "32.99")

	list, err := uc.List(20, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 20, list.Page.Limit)
}
