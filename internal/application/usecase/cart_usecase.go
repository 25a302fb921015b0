package usecase

import (
	"github.com/google/uuid"

	"github.com/candyycode/pet-store-api/internal/application/dto"
	"github.com/candyycode/pet-store-api/internal/domain"
	"github.com/candyycode/pet-store-api/internal/domain/entity"
	"github.com/candyycode/pet-store-api/internal/domain/repository"
)

// CartUseCase gestiona el carrito de un usuario y sus líneas.
// Invariantes: un carrito por usuario, una línea por producto por carrito,
// cantidades siempre positivas.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// GetCartForUser devuelve el carrito del usuario o ErrCartNotFound.
func (uc *CartUseCase) GetCartForUser(userID string) (*dto.CartResponse, error) {
	cart, err := uc.cartOf(userID)
	if err != nil {
		return nil, err
	}
	return &dto.CartResponse{ID: cart.ID, UserID: cart.UserID, CreatedAt: cart.CreatedAt}, nil
}

// ListItems devuelve todas las líneas del carrito del usuario; el orden no
// tiene significado.
func (uc *CartUseCase) ListItems(userID string) (*dto.CartItemListResponse, error) {
	cart, err := uc.cartOf(userID)
	if err != nil {
		return nil, err
	}
	items, err := uc.carts.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toCartItemResponse(it))
	}
	return &dto.CartItemListResponse{Items: out}, nil
}

// AddItem inserta una línea nueva en el carrito del usuario.
// Si el producto ya está en el carrito devuelve ErrConflict: quien quiera
// "agregar o incrementar" debe usar ChangeQuantity.
func (uc *CartUseCase) AddItem(userID string, in dto.AddCartItemRequest) (*dto.CartItemResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	cart, err := uc.cartOf(userID)
	if err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	item := &entity.CartItem{
		ID:        uuid.New().String(),
		CartID:    cart.ID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}
	if err := uc.carts.AddItem(item); err != nil {
		return nil, err
	}
	return toCartItemResponse(item), nil
}

// ChangeQuantity fija la cantidad de una línea existente, localizada por la
// clave (carrito, producto). Línea inexistente es ErrNotFound.
func (uc *CartUseCase) ChangeQuantity(userID, productID string, quantity int32) (*dto.CartItemResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	cart, err := uc.cartOf(userID)
	if err != nil {
		return nil, err
	}
	item, err := uc.carts.UpdateQuantity(cart.ID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toCartItemResponse(item), nil
}

// RemoveItem elimina la línea del producto. Es idempotente: si la línea no
// existe la operación igualmente termina bien.
func (uc *CartUseCase) RemoveItem(userID, productID string) error {
	cart, err := uc.cartOf(userID)
	if err != nil {
		return err
	}
	return uc.carts.DeleteItem(cart.ID, productID)
}

func (uc *CartUseCase) cartOf(userID string) (*entity.Cart, error) {
	cart, err := uc.carts.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, domain.ErrCartNotFound
	}
	return cart, nil
}

func toCartItemResponse(it *entity.CartItem) *dto.CartItemResponse {
	if it == nil {
		return nil
	}
	return &dto.CartItemResponse{
		ID:        it.ID,
		CartID:    it.CartID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
	}
}
