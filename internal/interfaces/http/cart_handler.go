package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/candyycode/pet-store-api/internal/application/dto"
	"github.com/candyycode/pet-store-api/internal/application/usecase"
)

// CartHandler maneja el carrito del usuario. Todas las rutas pasan antes por
// AuthMiddleware + RequireOwner: el :id de la ruta ya es el usuario autenticado.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// GetCart godoc
// @Summary      Ver el carrito del usuario
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	out, err := h.uc.GetCartForUser(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Ver las líneas del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.CartItemListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/cart/cartProducts [get]
func (h *CartHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.AddCartItemRequest  true  "product_id y quantity"
// @Success      201   {object}  dto.CartItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/cart/cartProducts [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !requireUUID(c, in.ProductID, "product_id") {
		return nil
	}
	out, err := h.uc.AddItem(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ChangeQuantity godoc
// @Summary      Cambiar la cantidad de una línea
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id         path  string  true  "ID del usuario"
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.ChangeQuantityRequest  true  "quantity"
// @Success      200  {object}  dto.CartItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/cart/cartProducts/{productId} [put]
func (h *CartHandler) ChangeQuantity(c *fiber.Ctx) error {
	if !requireUUID(c, c.Params("productId"), "productId") {
		return nil
	}
	var in dto.ChangeQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeQuantity(c.Params("id"), c.Params("productId"), in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar producto del carrito (idempotente)
// @Tags         cart
// @Security     Bearer
// @Param        id         path  string  true  "ID del usuario"
// @Param        productId  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/cart/cartProducts/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	if !requireUUID(c, c.Params("productId"), "productId") {
		return nil
	}
	if err := h.uc.RemoveItem(c.Params("id"), c.Params("productId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
