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
	"github.com/candyycode/pet-store-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memCartRepo struct {
	byUser map[string]*entity.Cart
	items  map[string]*entity.CartItem // clave cartID + "|" + productID
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{
		byUser: map[string]*entity.Cart{},
		items:  map[string]*entity.CartItem{},
	}
}

func itemKey(cartID, productID string) string { return cartID + "|" + productID }

func (r *memCartRepo) Create(c *entity.Cart) error {
	if _, ok := r.byUser[c.UserID]; ok {
		return domain.ErrConflict
	}
	cp := *c
	r.byUser[c.UserID] = &cp
	return nil
}

func (r *memCartRepo) GetByUser(userID string) (*entity.Cart, error) {
	c, ok := r.byUser[userID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCartRepo) ListItems(cartID string) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, it := range r.items {
		if it.CartID == cartID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memCartRepo) AddItem(item *entity.CartItem) error {
	key := itemKey(item.CartID, item.ProductID)
	if _, ok := r.items[key]; ok {
		return domain.ErrConflict
	}
	cp := *item
	r.items[key] = &cp
	return nil
}

func (r *memCartRepo) UpdateQuantity(cartID, productID string, quantity int32) (*entity.CartItem, error) {
	it, ok := r.items[itemKey(cartID, productID)]
	if !ok {
		return nil, nil
	}
	it.Quantity = quantity
	cp := *it
	return &cp, nil
}

func (r *memCartRepo) DeleteItem(cartID, productID string) error {
	delete(r.items, itemKey(cartID, productID))
	return nil
}

func (r *memCartRepo) DeleteByUser(userID string) error {
	c, ok := r.byUser[userID]
	if !ok {
		return nil
	}
	for key, it := range r.items {
		if it.CartID == c.ID {
			delete(r.items, key)
		}
	}
	delete(r.byUser, userID)
	return nil
}

type memProductRepo struct {
	byID map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

// buildCartFixture deja un usuario con carrito y un producto en catálogo.
func buildCartFixture(t *testing.T) (*usecase.CartUseCase, *memCartRepo, string, string) {
	t.Helper()
	carts := newMemCartRepo()
	products := newMemProductRepo()

	userID := uuid.New().String()
	require.NoError(t, carts.Create(&entity.Cart{ID: uuid.New().String(), UserID: userID}))

	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        "cat toy",
		Description: "ball cat toy",
		Price:       decimal.RequireFromString("1.99"),
	}
	require.NoError(t, products.Create(product))

	return usecase.NewCartUseCase(carts, products), carts, userID, product.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetCartForUser
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCartForUser_Existente_RetornaCarrito(t *testing.T) {
	uc, _, userID, _ := buildCartFixture(t)

	cart, err := uc.GetCartForUser(userID)
	require.NoError(t, err)
	assert.Equal(t, userID, cart.UserID)
	assert.NotEmpty(t, cart.ID)
}

func TestGetCartForUser_SinCarrito_RetornaErrCartNotFound(t *testing.T) {
	uc, _, _, _ := buildCartFixture(t)

	_, err := uc.GetCartForUser(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AddItem
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_ProductoNuevo_CreaLinea(t *testing.T) {
	uc, _, userID, productID := buildCartFixture(t)

	item, err := uc.AddItem(userID, dto.AddCartItemRequest{ProductID: productID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, productID, item.ProductID)
	assert.Equal(t, int32(3), item.Quantity)

	list, err := uc.ListItems(userID)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, item.ID, list.Items[0].ID)
}

func TestAddItem_ProductoRepetido_RetornaErrConflict(t *testing.T) {
	// Agregar no incrementa: la línea ya existe y eso es un conflicto.
	// Para cambiar la cantidad está ChangeQuantity.
	uc, _, userID, productID := buildCartFixture(t)

	_, err := uc.AddItem(userID, dto.AddCartItemRequest{ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	_, err = uc.AddItem(userID, dto.AddCartItemRequest{ProductID: productID, Quantity: 2})
	assert.ErrorIs(t, err, domain.ErrConflict)

	list, err := uc.ListItems(userID)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, int32(1), list.Items[0].Quantity, "el conflicto no debe tocar la línea existente")
}

func TestAddItem_CantidadCero_RetornaErrInvalidInput(t *testing.T) {
	uc, _, userID, productID := buildCartFixture(t)

	_, err := uc.AddItem(userID, dto.AddCartItemRequest{ProductID: productID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddItem_CantidadNegativa_RetornaErrInvalidInput(t *testing.T) {
	uc, _, userID, productID := buildCartFixture(t)

	_, err := uc.AddItem(userID, dto.AddCartItemRequest{ProductID: productID, Quantity: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddItem_ProductoInexistente_RetornaErrNotFound(t *testing.T) {
	uc, _, userID, _ := buildCartFixture(t)

	_, err := uc.AddItem(userID, dto.AddCartItemRequest{ProductID: uuid.New().String(), Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_UsuarioSinCarrito_RetornaErrCartNotFound(t *testing.T) {
	uc, _, _, productID := buildCartFixture(t)

	_, err := uc.AddItem(uuid.New().String(), dto.AddCartItemRequest{ProductID: productID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ChangeQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestChangeQuantity_LineaExistente_FijaCantidad(t *testing.T) {
	uc, _, userID, productID := buildCartFixture(t)
	_, err := uc.AddItem(userID, dto.AddCartItemRequest{ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	item, err := uc.ChangeQuantity(userID, productID, 7)
	require.NoError(t, err)
	assert.Equal(t, int32(7), item.Quantity)
}

func TestChangeQuantity_SoloTocaEsaLinea(t *testing.T) {
	uc, carts, userID, productID := buildCartFixture(t)

	// Segundo producto en el mismo carrito.
	cart, err := carts.GetByUser(userID)
	require.NoError(t, err)
	otherProduct := uuid.New().String()
	require.NoError(t, carts.AddItem(&entity.CartItem{
		ID:        uuid.New().String(),
		CartID:    cart.ID,
		ProductID: otherProduct,
		Quantity:  5,
	}))

	_, err = uc.AddItem(userID, dto.AddCartItemRequest{ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	_, err = uc.ChangeQuantity(userID, productID, 9)
	require.NoError(t, err)

	list, err := uc.ListItems(userID)
	require.NoError(t, err)
	for _, it := range list.Items {
		if it.ProductID == otherProduct {
			assert.Equal(t, int32(5), it.Quantity, "la otra línea no debe cambiar")
		}
	}
}

func TestChangeQuantity_LineaInexistente_RetornaErrNotFound(t *testing.T) {
	uc, _, userID, productID := buildCartFixture(t)

	_, err := uc.ChangeQuantity(userID, productID, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChangeQuantity_CantidadCero_RetornaErrInvalidInput(t *testing.T) {
	uc, _, userID, productID := buildCartFixture(t)
	_, err := uc.AddItem(userID, dto.AddCartItemRequest{ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	// Cantidad cero no es "borrar": para eso está RemoveItem.
	_, err = uc.ChangeQuantity(userID, productID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RemoveItem
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoveItem_EliminaLinea(t *testing.T) {
	uc, _, userID, productID := buildCartFixture(t)
	_, err := uc.AddItem(userID, dto.AddCartItemRequest{ProductID: productID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, uc.RemoveItem(userID, productID))

	list, err := uc.ListItems(userID)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestRemoveItem_EsIdempotente(t *testing.T) {
	uc, _, userID, productID := buildCartFixture(t)
	_, err := uc.AddItem(userID, dto.AddCartItemRequest{ProductID: productID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, uc.RemoveItem(userID, productID))
	assert.NoError(t, uc.RemoveItem(userID, productID), "quitar lo ya quitado no es error")
}

func TestRemoveItem_UsuarioSinCarrito_RetornaErrCartNotFound(t *testing.T) {
	uc, _, _, productID := buildCartFixture(t)

	err := uc.RemoveItem(uuid.New().String(), productID)
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}
