package entity

import "time"

// Cart es el carrito de un usuario. Cada usuario tiene exactamente uno,
// creado en el registro; la DB lo garantiza con UNIQUE(user_id).
type Cart struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}

// CartItem asocia un producto con un carrito y una cantidad.
// El par (CartID, ProductID) es único: agregar dos veces el mismo producto
// es un conflicto, no un incremento.
type CartItem struct {
	ID        string
	CartID    string
	ProductID string
	Quantity  int32
}
