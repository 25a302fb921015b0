// seed crea el esquema de la tienda y carga datos de demostración:
// tres cuentas (cameron es admin), cuatro productos y los carritos iniciales.
//
// Uso: JWT_SECRET=... DATABASE_URL=... go run ./cmd/seed
// Destruye y recrea las tablas: solo para desarrollo.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/candyycode/pet-store-api/internal/domain/entity"
	"github.com/candyycode/pet-store-api/internal/infrastructure/postgres"
	"github.com/candyycode/pet-store-api/pkg/config"
)

const schema = `
DROP TABLE IF EXISTS cart_products;
DROP TABLE IF EXISTS carts;
DROP TABLE IF EXISTS users;
DROP TABLE IF EXISTS products;

CREATE TABLE users(
	id UUID PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	email VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(100) NOT NULL,
	first_name VARCHAR(100) NOT NULL DEFAULT '',
	last_name VARCHAR(100) NOT NULL DEFAULT '',
	phone_number VARCHAR(100) NOT NULL DEFAULT '',
	is_admin BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE products(
	id UUID PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	name VARCHAR(100) NOT NULL,
	description VARCHAR(255) NOT NULL,
	price NUMERIC NOT NULL CHECK (price >= 0),
	inventory INTEGER CHECK (inventory >= 0)
);

CREATE TABLE carts(
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL UNIQUE REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE cart_products(
	id UUID PRIMARY KEY,
	cart_id UUID NOT NULL REFERENCES carts(id),
	product_id UUID NOT NULL REFERENCES products(id),
	quantity INTEGER NOT NULL CHECK (quantity > 0),
	CONSTRAINT unique_cart_product UNIQUE (cart_id, product_id)
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fail("crear tablas: %v", err)
	}
	fmt.Println("tablas creadas")

	users := postgres.NewUserRepository(pool)
	products := postgres.NewProductRepository(pool)
	carts := postgres.NewCartRepository(pool)

	cameron := seedUser(users, "cameron@icloud.com", "meowmeow1", true)
	emily := seedUser(users, "emily@icloud.com", "woofwoof1", false)
	sarah := seedUser(users, "sarah@icloud.com", "kittylover", false)

	catToy := seedProduct(products, "cat toy", "ball cat toy", "1.99", 10)
	catFood := seedProduct(products, "cat food", "best cat food ever", "32.99", 15)
	dogFood := seedProduct(products, "dog food", "ultimate dog food", "54.98", 20)
	dogCollar := seedProduct(products, "dog collar", "premium dog collar", "19.95", 25)

	cameronCart := seedCart(carts, cameron)
	emilyCart := seedCart(carts, emily)
	sarahCart := seedCart(carts, sarah)

	seedItem(carts, cameronCart, catToy, 3)
	seedItem(carts, cameronCart, catFood, 2)
	seedItem(carts, emilyCart, dogFood, 1)
	seedItem(carts, emilyCart, dogCollar, 5)
	seedItem(carts, emilyCart, catToy, 4)
	seedItem(carts, sarahCart, catFood, 1)

	fmt.Println("datos de demostración cargados")
}

func seedUser(repo *postgres.UserRepo, email, password string, isAdmin bool) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de password: %v", err)
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(u); err != nil {
		fail("crear usuario %s: %v", email, err)
	}
	return u.ID
}

func seedProduct(repo *postgres.ProductRepo, name, description, price string, inventory int32) string {
	p, err := decimal.NewFromString(price)
	if err != nil {
		fail("precio de %s: %v", name, err)
	}
	now := time.Now()
	prod := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Price:       p,
		Inventory:   &inventory,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(prod); err != nil {
		fail("crear producto %s: %v", name, err)
	}
	return prod.ID
}

func seedCart(repo *postgres.CartRepo, userID string) string {
	c := &entity.Cart{ID: uuid.New().String(), UserID: userID, CreatedAt: time.Now()}
	if err := repo.Create(c); err != nil {
		fail("crear carrito de %s: %v", userID, err)
	}
	return c.ID
}

func seedItem(repo *postgres.CartRepo, cartID, productID string, quantity int32) {
	it := &entity.CartItem{
		ID:        uuid.New().String(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := repo.AddItem(it); err != nil {
		fail("agregar item al carrito %s: %v", cartID, err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
