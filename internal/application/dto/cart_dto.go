package dto

import "time"

// CartResponse salida del carrito de un usuario.
type CartResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItemResponse salida de una línea del carrito.
type CartItemResponse struct {
	ID        string `json:"id"`
	CartID    string `json:"cart_id"`
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// CartItemListResponse líneas de un carrito.
type CartItemListResponse struct {
	Items []CartItemResponse `json:"items"`
}

// AddCartItemRequest entrada para agregar un producto al carrito.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int32  `json:"quantity" validate:"required,gt=0"`
}

// ChangeQuantityRequest entrada para cambiar la cantidad de una línea.
type ChangeQuantityRequest struct {
	Quantity int32 `json:"quantity" validate:"required,gt=0"`
}
