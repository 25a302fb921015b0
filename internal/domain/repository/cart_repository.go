package repository

import "github.com/candyycode/pet-store-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para Cart y CartItem (DIP).
type CartRepository interface {
	Create(cart *entity.Cart) error
	// GetByUser devuelve el carrito más reciente del usuario, o (nil, nil) si no hay.
	// Con UNIQUE(user_id) en el esquema solo puede existir uno; el orden es defensivo.
	GetByUser(userID string) (*entity.Cart, error)
	ListItems(cartID string) ([]*entity.CartItem, error)
	// AddItem inserta una línea nueva. Devuelve domain.ErrConflict si el par
	// (cart_id, product_id) ya existe.
	AddItem(item *entity.CartItem) error
	// UpdateQuantity localiza la línea por la clave (cartID, productID) y fija
	// la cantidad. Devuelve (nil, nil) si la línea no existe.
	UpdateQuantity(cartID, productID string, quantity int32) (*entity.CartItem, error)
	// DeleteItem elimina la línea; la ausencia previa no es error.
	DeleteItem(cartID, productID string) error
	// DeleteByUser elimina las líneas y el carrito del usuario (baja de cuenta).
	DeleteByUser(userID string) error
}
