package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mala-inventario/internal/application/dto"
	"github.com/jhoicas/mala-inventario/internal/application/inventory"
	"github.com/jhoicas/mala-inventario/internal/application/usecase"
	"github.com/jhoicas/mala-inventario/internal/domain"
	"github.com/jhoicas/mala-inventario/internal/domain/entity"
)

// InventoryHandler vista "Gestión de Inventario" y ajuste de stock por API.
type InventoryHandler struct {
	uc      *inventory.AdjustStockUseCase
	catalog *usecase.CatalogUseCase
	views   *Views
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.AdjustStockUseCase, catalog *usecase.CatalogUseCase, views *Views) *InventoryHandler {
	return &InventoryHandler{uc: uc, catalog: catalog, views: views}
}

type inventoryPage struct {
	Page
	Selection
}

// Page GET /inventario
func (h *InventoryHandler) Page(c *fiber.Ctx) error {
	return h.render(c, h.views.page("Gestión de Inventario", "inventario"), c.Query("codigo"))
}

// Submit POST /inventario (formulario). El resultado se muestra en la misma vista.
func (h *InventoryHandler) Submit(c *fiber.Ctx) error {
	page := h.views.page("Gestión de Inventario", "inventario")
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		page.Error = "La cantidad debe ser un entero positivo."
		return h.render(c.Status(fiber.StatusBadRequest), page, in.Code)
	}
	out, err := h.uc.AdjustStockFromRequest(c.UserContext(), in)
	if err != nil {
		status, body := errorStatus(err)
		page.Error = body.Message
		if errors.Is(err, domain.ErrInsufficientStock) {
			page.Error = fmt.Sprintf("No hay suficiente inventario para quitar %d unidades.", in.Quantity)
		}
		return h.render(c.Status(status), page, in.Code)
	}
	page.Success = adjustMessage(out)
	page.Info = "Datos guardados correctamente."
	return h.render(c, page, out.Code)
}

// Adjust godoc
// @Summary      Añadir o quitar inventario de un producto
// @Description  Quitar más unidades de las disponibles se rechaza sin modificar el catálogo.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "codigo, cantidad (> 0), operacion (Añadir | Quitar)"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      423   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdjustStockFromRequest(c.UserContext(), in)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(out)
}

func (h *InventoryHandler) render(c *fiber.Ctx, page Page, code string) error {
	data := inventoryPage{Page: page, Selection: selectProducts(c, h.catalog, code)}
	return h.views.Render(c, "inventory", data)
}

func adjustMessage(m *dto.MovementResponse) string {
	if m.Operation == string(entity.StockRemove) {
		return fmt.Sprintf("Se quitaron %d unidades de %s.", m.Quantity, m.Code)
	}
	return fmt.Sprintf("Se añadieron %d unidades a %s.", m.Quantity, m.Code)
}
