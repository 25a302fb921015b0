package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/candyycode/pet-store-api/internal/application/dto"
)

// identityResolver es el contrato mínimo que necesita el middleware para
// resolver un token a un usuario. Lo implementa *auth.AuthUseCase; la
// interfaz permite tests sin DB.
type identityResolver interface {
	Resolve(token string) (*dto.AuthUser, error)
}

// LocalAuthUser key de c.Locals para el usuario autenticado.
const LocalAuthUser = "auth_user"

// AuthMiddleware valida el token del header Authorization y carga el usuario
// autenticado en c.Locals. Acepta el token crudo o con prefijo "Bearer ".
// Cualquier fallo de resolución responde 401: un token inválido y una cuenta
// inexistente son indistinguibles desde fuera.
func AuthMiddleware(resolver identityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		token := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = strings.TrimSpace(parts[1])
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		user, err := resolver.Resolve(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalAuthUser, user)
		return c.Next()
	}
}

// GetAuthUser devuelve el usuario autenticado del contexto (después del middleware de auth).
func GetAuthUser(c *fiber.Ctx) *dto.AuthUser {
	v := c.Locals(LocalAuthUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*dto.AuthUser)
	return u
}

// RequireOwner exige que el :id de la ruta sea el usuario autenticado.
// Ajeno es 403, no 401: el que llega aquí ya probó quién es.
func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetAuthUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
		}
		if c.Params("id") != user.ID {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el recurso pertenece a otro usuario"})
		}
		return c.Next()
	}
}

// RequireAdmin exige el flag de admin del usuario autenticado.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetAuthUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
		}
		if !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ADMIN_ONLY", Message: "se requiere rol de administrador"})
		}
		return c.Next()
	}
}
