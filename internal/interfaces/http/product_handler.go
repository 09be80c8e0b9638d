package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mala-inventario/internal/application/dto"
	"github.com/jhoicas/mala-inventario/internal/application/usecase"
	"github.com/jhoicas/mala-inventario/internal/domain/catalog"
)

// ProductHandler vista del catálogo y endpoints de consulta de productos.
type ProductHandler struct {
	uc    *usecase.CatalogUseCase
	views *Views
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.CatalogUseCase, views *Views) *ProductHandler {
	return &ProductHandler{uc: uc, views: views}
}

type catalogPage struct {
	Page
	Query    dto.CatalogQuery
	Options  *dto.CatalogOptionsResponse
	Products []dto.ProductResponse
}

// Page vista "Catálogo de Productos": búsqueda, filtro por familia y rango de precio.
// GET /catalogo
func (h *ProductHandler) Page(c *fiber.Ctx) error {
	data := catalogPage{Page: h.views.page("Catálogo de Productos", "catalogo")}
	if err := c.QueryParser(&data.Query); err != nil {
		data.Error = "Parámetros de búsqueda inválidos."
	}
	data.Options = h.uc.Options()
	// El rango de precio arranca en los extremos del catálogo.
	if data.Query.MinPrice == "" {
		data.Query.MinPrice = data.Options.MinPrice.String()
	}
	if data.Query.MaxPrice == "" {
		data.Query.MaxPrice = data.Options.MaxPrice.String()
	}
	out, err := h.uc.Search(data.Query)
	if err != nil {
		_, body := errorStatus(err)
		data.Error = body.Message
		return h.views.Render(c.Status(fiber.StatusBadRequest), "catalog", data)
	}
	data.Products = out.Items
	return h.views.Render(c, "catalog", data)
}

// List godoc
// @Summary      Buscar y filtrar productos
// @Tags         products
// @Produce      json
// @Param        q           query  string  false  "Texto a buscar en código, familia, color y talla"
// @Param        familia     query  string  false  "Familia (Todos = sin filtro)"
// @Param        color       query  string  false  "Color (Todos = sin filtro)"
// @Param        talla       query  string  false  "Talla (Todos = sin filtro)"
// @Param        precio_min  query  string  false  "Precio mínimo (inclusivo)"
// @Param        precio_max  query  string  false  "Precio máximo (inclusivo)"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.CatalogQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Search(q)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(out)
}

// GetByCode godoc
// @Summary      Obtener producto por CODIGO
// @Tags         products
// @Produce      json
// @Param        codigo  path  string  true  "CODIGO del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{codigo} [get]
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.Params("codigo"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(out)
}

// Options godoc
// @Summary      Valores de los selectores (familias, colores, tallas, precios, canales)
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.CatalogOptionsResponse
// @Router       /api/products/options [get]
func (h *ProductHandler) Options(c *fiber.Ctx) error {
	return c.JSON(h.uc.Options())
}

// Selection filtros de Familia/Color/Talla compartidos por Inventario y Ventas.
type Selection struct {
	Filter   catalog.Filter
	Options  *dto.CatalogOptionsResponse
	Products []dto.ProductResponse
	Selected string
}

// selectProducts lee los filtros de la query y devuelve los productos elegibles.
// El producto seleccionado es el de la query si está entre ellos; si no, el primero.
func selectProducts(c *fiber.Ctx, uc *usecase.CatalogUseCase, code string) Selection {
	s := Selection{
		Filter: catalog.Filter{
			Family: c.Query("familia", catalog.All),
			Color:  c.Query("color", catalog.All),
			Size:   c.Query("talla", catalog.All),
		},
		Options: uc.Options(),
	}
	out, err := uc.Search(dto.CatalogQuery{Family: s.Filter.Family, Color: s.Filter.Color, Size: s.Filter.Size})
	if err == nil {
		s.Products = out.Items
	}
	for _, p := range s.Products {
		if p.Code == code {
			s.Selected = code
		}
	}
	if s.Selected == "" && len(s.Products) > 0 {
		s.Selected = s.Products[0].Code
	}
	return s
}
