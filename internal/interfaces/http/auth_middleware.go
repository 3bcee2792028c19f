package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/correduria/backoffice/internal/application/auth"
	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/domain/entity"
)

// LocalActor es la key de c.Locals donde el middleware deja el usuario
// autenticado.
const LocalActor = "actor"

// AuthMiddleware valida el token Bearer contra el JWT y la tabla de sesiones
// y carga el actor en c.Locals. Cualquier fallo es el mismo 401: no se filtra
// si el token está mal firmado, caducado o revocado.
func AuthMiddleware(authUC *auth.Usecase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Usuario no autenticado"})
		}
		actor, err := authUC.Authenticate(strings.TrimSpace(parts[1]))
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

// GetActor devuelve el usuario autenticado del contexto, o nil en rutas sin
// middleware.
func GetActor(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalActor)
	if v == nil {
		return nil
	}
	actor, _ := v.(*entity.User)
	return actor
}
