package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/candyycode/pet-store-api/internal/application/auth"
	"github.com/candyycode/pet-store-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	CartUC    *usecase.CartUseCase
}

// Router registra las rutas de la API. Cada ruta declara sus gates de forma
// explícita: auth, owner y admin son chequeos ortogonales.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	productHandler := NewProductHandler(deps.ProductUC)
	cartHandler := NewCartHandler(deps.CartUC)

	authed := AuthMiddleware(deps.AuthUC)

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authed, authHandler.Me)

	// Catálogo (público, solo lectura)
	api.Get("/products", productHandler.List)
	api.Get("/products/:productId", productHandler.GetByID)

	// Recursos del propio usuario (token + owner)
	owner := api.Group("/users/:id", authed, RequireOwner())
	owner.Put("/", userHandler.UpdateProfile)
	owner.Delete("/", userHandler.DeleteAccount)
	owner.Get("/cart", cartHandler.GetCart)
	owner.Get("/cart/cartProducts", cartHandler.ListItems)
	owner.Post("/cart/cartProducts", cartHandler.AddItem)
	owner.Put("/cart/cartProducts/:productId", cartHandler.ChangeQuantity)
	owner.Delete("/cart/cartProducts/:productId", cartHandler.RemoveItem)

	// Administración (token + owner + admin)
	owner.Get("/products", RequireAdmin(), productHandler.List)
	owner.Post("/products", RequireAdmin(), productHandler.Create)
	owner.Put("/products/:productId", RequireAdmin(), productHandler.Update)
	owner.Delete("/products/:productId", RequireAdmin(), productHandler.Delete)
	owner.Get("/users", RequireAdmin(), userHandler.List)
}
