package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mala-inventario/internal/application/analytics"
	"github.com/jhoicas/mala-inventario/internal/application/inventory"
	"github.com/jhoicas/mala-inventario/internal/application/sales"
	"github.com/jhoicas/mala-inventario/internal/application/usecase"
	"github.com/jhoicas/mala-inventario/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUseCase
	AdjustStock *inventory.AdjustStockUseCase
	RecordSale  *sales.RecordSaleUseCase
	Statistics  *analytics.StatisticsUseCase
	Views       *Views
	Log         *logger.Logger
	AssetsDir   string // fotos de la vista de inicio, servidas en /static
}

// Router registra las vistas HTML y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}
	if deps.AssetsDir != "" {
		app.Static("/static", deps.AssetsDir)
	}

	productHandler := NewProductHandler(deps.CatalogUC, deps.Views)
	inventoryHandler := NewInventoryHandler(deps.AdjustStock, deps.CatalogUC, deps.Views)
	salesHandler := NewSalesHandler(deps.RecordSale, deps.CatalogUC, deps.Views)
	analyticsHandler := NewAnalyticsHandler(deps.Statistics, deps.Views)

	// Vistas
	app.Get("/", HomeHandler(deps.Views))
	app.Get("/catalogo", RequireCatalog(deps.CatalogUC, deps.Views, "Catálogo de Productos", "catalogo"), productHandler.Page)

	requireInventory := RequireCatalog(deps.CatalogUC, deps.Views, "Gestión de Inventario", "inventario")
	app.Get("/inventario", requireInventory, inventoryHandler.Page)
	app.Post("/inventario", requireInventory, inventoryHandler.Submit)

	requireSales := RequireCatalog(deps.CatalogUC, deps.Views, "Registro de Ventas", "ventas")
	app.Get("/ventas", requireSales, salesHandler.Page)
	app.Post("/ventas", requireSales, salesHandler.Submit)

	app.Get("/estadisticas", analyticsHandler.Page)
	app.Get("/estadisticas/reporte.pdf", analyticsHandler.ReportPDF)

	// API JSON
	api := app.Group("/api")

	api.Get("/products", productHandler.List)
	api.Get("/products/options", productHandler.Options)
	api.Get("/products/:codigo", productHandler.GetByCode)

	api.Post("/inventory/adjustments", RequireCatalog(deps.CatalogUC, deps.Views, "", ""), inventoryHandler.Adjust)

	api.Post("/sales", RequireCatalog(deps.CatalogUC, deps.Views, "", ""), salesHandler.Record)
	api.Get("/sales/recent", salesHandler.Recent)

	api.Get("/statistics", analyticsHandler.GetStatistics)
}

// RequestLogger registra método, ruta, status y duración de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Err(err).
			Msg("http")
		return err
	}
}
