package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/mala-inventario/internal/application/analytics"
	"github.com/jhoicas/mala-inventario/internal/application/inventory"
	"github.com/jhoicas/mala-inventario/internal/application/sales"
	"github.com/jhoicas/mala-inventario/internal/application/session"
	"github.com/jhoicas/mala-inventario/internal/application/usecase"
	"github.com/jhoicas/mala-inventario/internal/domain"
	infrapdf "github.com/jhoicas/mala-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/mala-inventario/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/mala-inventario/internal/interfaces/http"
	"github.com/jhoicas/mala-inventario/pkg/config"
	"github.com/jhoicas/mala-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("catalogo", cfg.Data.CatalogFile).
		Str("ventas", cfg.Data.SalesFile).
		Msg("iniciando aplicación")

	catalogRepo, err := spreadsheet.NewCatalogRepository(cfg.Data.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("archivo de catálogo")
	}
	catalogRepo.WithLogger(log)
	ledgerRepo, err := spreadsheet.NewLedgerRepository(cfg.Data.SalesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("archivo de ventas")
	}

	ctx := context.Background()
	state := session.New(catalogRepo, ledgerRepo)
	if err := state.Load(ctx); err != nil {
		// Sin catálogo la aplicación arranca vacía y lo avisa en cada vista.
		if !errors.Is(err, domain.ErrFileNotFound) {
			log.Fatal().Err(err).Msg("carga de datos")
		}
		log.Warn().Err(err).Msg("catálogo no encontrado; se inicia con la base de datos vacía")
	}
	snap := state.Snapshot()
	log.Info().
		Int("productos", len(snap.Products)).
		Int("ventas", len(snap.Sales)).
		Msg("datos cargados")

	catalogUC := usecase.NewCatalogUseCase(state)
	adjustStockUC := inventory.NewAdjustStockUseCase(state, log)
	recordSaleUC := sales.NewRecordSaleUseCase(state, log)

	// PDF: reporte de la vista de estadísticas
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Brand)
	statisticsUC := appanalytics.NewStatisticsUseCase(state, pdfGenerator)

	views, err := httpRouter.NewViews(cfg.App.Brand, state.Warning)
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas HTML")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs (solo si existe el archivo)
	if _, err := os.Stat(cfg.App.DocsFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.DocsFile,
			Path:     "docs",
			Title:    cfg.App.Brand + " Inventario API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		AdjustStock: adjustStockUC,
		RecordSale:  recordSaleUC,
		Statistics:  statisticsUC,
		Views:       views,
		Log:         log,
		AssetsDir:   cfg.App.AssetsDir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
