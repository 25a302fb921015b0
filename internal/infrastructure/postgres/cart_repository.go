package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/candyycode/pet-store-api/internal/domain"
	"github.com/candyycode/pet-store-api/internal/domain/entity"
	"github.com/candyycode/pet-store-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL (usable con pool o tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador de persistencia para carritos. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// Create persiste un carrito nuevo. Un segundo carrito para el mismo usuario
// viola UNIQUE(user_id) y se reporta como ErrConflict.
func (r *CartRepo) Create(cart *entity.Cart) error {
	query := `INSERT INTO carts (id, user_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, cart.ID, cart.UserID, cart.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert cart: %w", err)
	}
	return nil
}

// GetByUser devuelve el carrito más reciente del usuario. El ORDER BY conserva
// el comportamiento histórico "última fila gana" frente a datos previos al
// constraint UNIQUE(user_id). (nil, nil) si no hay carrito.
func (r *CartRepo) GetByUser(userID string) (*entity.Cart, error) {
	query := `
		SELECT id, user_id, created_at FROM carts
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`
	var c entity.Cart
	err := r.q.QueryRow(context.Background(), query, userID).Scan(&c.ID, &c.UserID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart by user: %w", err)
	}
	return &c, nil
}

// ListItems devuelve todas las líneas del carrito.
func (r *CartRepo) ListItems(cartID string) ([]*entity.CartItem, error) {
	query := `SELECT id, cart_id, product_id, quantity FROM cart_products WHERE cart_id = $1`
	rows, err := r.q.Query(context.Background(), query, cartID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartItem
	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// AddItem inserta una línea. El constraint UNIQUE(cart_id, product_id)
// serializa inserciones concurrentes del mismo par: el perdedor recibe ErrConflict.
func (r *CartRepo) AddItem(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_products (id, cart_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.CartID, item.ProductID, item.Quantity)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad de la línea identificada por (cartID, productID).
// (nil, nil) si la línea no existe.
func (r *CartRepo) UpdateQuantity(cartID, productID string, quantity int32) (*entity.CartItem, error) {
	query := `
		UPDATE cart_products SET quantity = $3
		WHERE cart_id = $1 AND product_id = $2
		RETURNING id, cart_id, product_id, quantity`
	var it entity.CartItem
	err := r.q.QueryRow(context.Background(), query, cartID, productID, quantity).Scan(
		&it.ID, &it.CartID, &it.ProductID, &it.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update cart item quantity: %w", err)
	}
	return &it, nil
}

// DeleteItem elimina la línea; cero filas afectadas no es error.
func (r *CartRepo) DeleteItem(cartID, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_products WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID,
	)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// DeleteByUser elimina líneas y carrito del usuario. Pensado para correr
// dentro de la transacción de baja de cuenta.
func (r *CartRepo) DeleteByUser(userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_products WHERE cart_id IN (SELECT id FROM carts WHERE user_id = $1)`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("delete cart items by user: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM carts WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete cart by user: %w", err)
	}
	return nil
}
