package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mala-inventario/internal/application/dto"
)

// catalogChecker es el contrato mínimo que necesita el middleware para saber si hay productos.
// Lo implementa *usecase.CatalogUseCase.
type catalogChecker interface {
	IsEmpty() bool
}

const emptyCatalogMessage = "La base de datos de productos está vacía."

// RequireCatalog devuelve un middleware Fiber que corta las vistas y endpoints que
// operan sobre productos cuando el catálogo está vacío.
//
// Comportamiento:
//   - Rutas /api → 409 Conflict con código EMPTY_CATALOG.
//   - Vistas HTML → página con el aviso y sin formulario.
func RequireCatalog(checker catalogChecker, views *Views, title, active string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !checker.IsEmpty() {
			return c.Next()
		}
		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "EMPTY_CATALOG",
				Message: emptyCatalogMessage,
			})
		}
		data := views.page(title, active)
		data.Error = emptyCatalogMessage
		return views.Render(c, "empty", data)
	}
}
