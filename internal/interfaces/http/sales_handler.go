package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mala-inventario/internal/application/dto"
	"github.com/jhoicas/mala-inventario/internal/application/sales"
	"github.com/jhoicas/mala-inventario/internal/application/usecase"
	"github.com/jhoicas/mala-inventario/internal/domain"
)

// SalesHandler vista "Registro de Ventas" y endpoints de ventas.
type SalesHandler struct {
	uc      *sales.RecordSaleUseCase
	catalog *usecase.CatalogUseCase
	views   *Views
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.RecordSaleUseCase, catalog *usecase.CatalogUseCase, views *Views) *SalesHandler {
	return &SalesHandler{uc: uc, catalog: catalog, views: views}
}

type salesPage struct {
	Page
	Selection
	Detail   *dto.ProductResponse
	Channels []string
	Recent   []dto.SaleResponse
}

// Page GET /ventas
func (h *SalesHandler) Page(c *fiber.Ctx) error {
	return h.render(c, h.views.page("Registro de Ventas", "ventas"), c.Query("codigo"))
}

// Submit POST /ventas (formulario).
func (h *SalesHandler) Submit(c *fiber.Ctx) error {
	page := h.views.page("Registro de Ventas", "ventas")
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		page.Error = "La cantidad debe ser un entero positivo."
		return h.render(c.Status(fiber.StatusBadRequest), page, in.Code)
	}
	out, err := h.uc.RecordSale(c.UserContext(), in)
	switch {
	case errors.Is(err, domain.ErrLedgerNotPersisted):
		// El inventario ya quedó descontado; la venta está en memoria pero no en disco.
		page.Success = saleMessage(out)
		_, body := errorStatus(err)
		page.Error = body.Message
		return h.render(c.Status(fiber.StatusInternalServerError), page, in.Code)
	case errors.Is(err, domain.ErrInsufficientStock):
		page.Error = fmt.Sprintf("No hay suficiente inventario para vender %d unidades.", in.Quantity)
		return h.render(c.Status(fiber.StatusConflict), page, in.Code)
	case err != nil:
		status, body := errorStatus(err)
		page.Error = body.Message
		return h.render(c.Status(status), page, in.Code)
	}
	page.Success = saleMessage(out)
	page.Info = "Ventas guardadas correctamente."
	return h.render(c, page, out.Sale.Code)
}

// Record godoc
// @Summary      Registrar una venta
// @Description  Descuenta inventario, acumula Ventas y agrega la fila al registro de ventas.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "codigo, cantidad (> 0), canal"
// @Success      201   {object}  dto.RecordSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordSale(c.UserContext(), in)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Recent godoc
// @Summary      Últimas ventas registradas
// @Tags         sales
// @Produce      json
// @Param        limit  query  int  false  "Cantidad de filas (por defecto 5)"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales/recent [get]
func (h *SalesHandler) Recent(c *fiber.Ctx) error {
	return c.JSON(h.uc.RecentSales(c.QueryInt("limit", sales.RecentSalesDefault)))
}

func (h *SalesHandler) render(c *fiber.Ctx, page Page, code string) error {
	data := salesPage{
		Page:      page,
		Selection: selectProducts(c, h.catalog, code),
		Channels:  h.catalog.Options().Channels,
		Recent:    h.uc.RecentSales(sales.RecentSalesDefault),
	}
	if data.Selected != "" {
		if p, err := h.catalog.GetByCode(data.Selected); err == nil {
			data.Detail = p
		}
	}
	return h.views.Render(c, "sales", data)
}

func saleMessage(out *dto.RecordSaleResponse) string {
	return fmt.Sprintf("Venta registrada: %d unidades de %s por %s.", out.Sale.Quantity, out.Sale.Code, out.Sale.Channel)
}
