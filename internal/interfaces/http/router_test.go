package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mala-inventario/internal/application/analytics"
	"github.com/jhoicas/mala-inventario/internal/application/dto"
	"github.com/jhoicas/mala-inventario/internal/application/inventory"
	"github.com/jhoicas/mala-inventario/internal/application/sales"
	"github.com/jhoicas/mala-inventario/internal/application/session"
	"github.com/jhoicas/mala-inventario/internal/application/usecase"
	"github.com/jhoicas/mala-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/mala-inventario/internal/infrastructure/spreadsheet"
	apphttp "github.com/jhoicas/mala-inventario/internal/interfaces/http"
	"github.com/jhoicas/mala-inventario/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const catalogCSV = "CODIGO,Familia,Color,Talla,Precio,costo,Inventario,Ventas\n" +
	"BL-001,Blusa,Negro,M,100,60,5,0\n" +
	"VE-001,Vestido,Rojo,S,990,400,1,0\n"

// buildTestApp arma la aplicación completa sobre archivos CSV temporales.
// Con catalog vacío el archivo de catálogo no se crea.
func buildTestApp(t *testing.T, catalog string) *fiber.App {
	t.Helper()
	return buildTestAppIn(t, t.TempDir(), catalog)
}

// buildTestAppIn igual que buildTestApp pero con los archivos en dir.
func buildTestAppIn(t *testing.T, dir, catalog string) *fiber.App {
	t.Helper()
	catPath := filepath.Join(dir, "catalogo.csv")
	if catalog != "" {
		require.NoError(t, os.WriteFile(catPath, []byte(catalog), 0o644))
	}
	catRepo, err := spreadsheet.NewCatalogRepository(catPath)
	require.NoError(t, err)
	ledRepo, err := spreadsheet.NewLedgerRepository(filepath.Join(dir, "ventas.csv"))
	require.NoError(t, err)

	state := session.New(catRepo, ledRepo)
	_ = state.Load(context.Background())

	views, err := apphttp.NewViews("MALA", state.Warning)
	require.NoError(t, err)

	app := fiber.New()
	log := logger.Nop()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:   usecase.NewCatalogUseCase(state),
		AdjustStock: inventory.NewAdjustStockUseCase(state, log),
		RecordSale:  sales.NewRecordSaleUseCase(state, log),
		Statistics:  analytics.NewStatisticsUseCase(state, pdf.NewMarotoPDFGenerator("MALA")),
		Views:       views,
		Log:         log,
	})
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()
	return do(t, app, httptest.NewRequest(http.MethodGet, target, nil))
}

func postJSON(t *testing.T, app *fiber.App, target string, payload any) (*http.Response, string) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(string(raw)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return do(t, app, req)
}

func postForm(t *testing.T, app *fiber.App, target string, form url.Values) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return do(t, app, req)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vistas
// ──────────────────────────────────────────────────────────────────────────────

func TestVistas_Responden(t *testing.T) {
	app := buildTestApp(t, catalogCSV)

	for target, want := range map[string]string{
		"/":             "Effortless Wear",
		"/catalogo":     "BL-001",
		"/inventario":   "Actualizar Inventario",
		"/ventas":       "Registrar Venta",
		"/estadisticas": "No se han registrado ventas todavía.",
	} {
		resp, body := get(t, app, target)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, target)
		assert.Contains(t, body, want, target)
	}
}

func TestCatalogo_SinCoincidencias(t *testing.T) {
	app := buildTestApp(t, catalogCSV)

	resp, body := get(t, app, "/catalogo?q=zapato")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No se encontraron productos que coincidan con los filtros.")
}

func TestInventario_Formulario(t *testing.T) {
	app := buildTestApp(t, catalogCSV)

	resp, body := postForm(t, app, "/inventario", url.Values{"codigo": {"BL-001"}, "cantidad": {"3"}, "operacion": {"Añadir"}})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Se añadieron 3 unidades a BL-001.")

	resp, body = postForm(t, app, "/inventario", url.Values{"codigo": {"BL-001"}, "cantidad": {"50"}, "operacion": {"Quitar"}})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "No hay suficiente inventario para quitar 50 unidades.")
}

func TestVentas_FormularioYEstadisticas(t *testing.T) {
	app := buildTestApp(t, catalogCSV)

	resp, body := postForm(t, app, "/ventas", url.Values{"codigo": {"BL-001"}, "cantidad": {"2"}, "canal": {"Whatsapp"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Venta registrada: 2 unidades de BL-001 por Whatsapp.")
	assert.Contains(t, body, "Historial de Ventas Recientes")

	_, body = get(t, app, "/estadisticas")
	assert.Contains(t, body, "Piezas Vendidas")
	assert.Contains(t, body, "$80.00", "utilidad (100-60)*2")
	assert.Contains(t, body, "40.00%")
}

func TestCatalogoVacio_BloqueaOperaciones(t *testing.T) {
	app := buildTestApp(t, "")

	_, body := get(t, app, "/")
	assert.Contains(t, body, "El archivo de base de datos no fue encontrado.")

	_, body = get(t, app, "/inventario")
	assert.Contains(t, body, "La base de datos de productos está vacía.")
	assert.NotContains(t, body, "Actualizar Inventario")

	resp, _ := postJSON(t, app, "/api/sales", dto.RecordSaleRequest{Code: "BL-001", Quantity: 1, Channel: "Shopify"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// API JSON
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Productos(t *testing.T) {
	app := buildTestApp(t, catalogCSV)

	resp, body := get(t, app, "/api/products?q=rojo")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.ProductListResponse
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "VE-001", list.Items[0].Code)

	resp, _ = get(t, app, "/api/products?precio_min=abc")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, app, "/api/products/NO-EXISTE")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body = get(t, app, "/api/products/options")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var opts dto.CatalogOptionsResponse
	require.NoError(t, json.Unmarshal([]byte(body), &opts))
	assert.Equal(t, []string{"Blusa", "Vestido"}, opts.Families)
}

func TestAPI_AjusteDeInventario(t *testing.T) {
	app := buildTestApp(t, catalogCSV)

	resp, body := postJSON(t, app, "/api/inventory/adjustments", dto.AdjustStockRequest{Code: "VE-001", Quantity: 4, Operation: "Añadir"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body)
	var mov dto.MovementResponse
	require.NoError(t, json.Unmarshal([]byte(body), &mov))
	assert.Equal(t, 1, mov.InventoryBefore)
	assert.Equal(t, 5, mov.InventoryAfter)

	resp, body = postJSON(t, app, "/api/inventory/adjustments", dto.AdjustStockRequest{Code: "VE-001", Quantity: 6, Operation: "Quitar"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "INSUFFICIENT_STOCK")
}

func TestAPI_CatalogoNoSePuedeGuardar(t *testing.T) {
	dir := t.TempDir()
	app := buildTestAppIn(t, dir, catalogCSV)
	// Un directorio en lugar del archivo impide reescribir el catálogo.
	catPath := filepath.Join(dir, "catalogo.csv")
	require.NoError(t, os.Remove(catPath))
	require.NoError(t, os.Mkdir(catPath, 0o755))

	resp, body := postJSON(t, app, "/api/inventory/adjustments", dto.AdjustStockRequest{Code: "VE-001", Quantity: 1, Operation: "Añadir"})

	assert.Equal(t, fiber.StatusLocked, resp.StatusCode)
	assert.Contains(t, body, "FILE_LOCKED")
	assert.NotContains(t, body, "FILE_NOT_FOUND")
}

func TestAPI_Ventas(t *testing.T) {
	app := buildTestApp(t, catalogCSV)

	resp, body := postJSON(t, app, "/api/sales", dto.RecordSaleRequest{Code: "BL-001", Quantity: 2, Channel: "instagram"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, body)
	var out dto.RecordSaleResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, 3, out.Inventory)
	assert.Equal(t, 2, out.Sales)
	assert.Equal(t, "Instagram", out.Sale.Channel)

	resp, body = postJSON(t, app, "/api/sales", dto.RecordSaleRequest{Code: "BL-001", Quantity: 1, Channel: "Fax"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "INVALID_CHANNEL")

	_, body = get(t, app, "/api/sales/recent")
	var recent []dto.SaleResponse
	require.NoError(t, json.Unmarshal([]byte(body), &recent))
	require.Len(t, recent, 1)
	assert.Equal(t, "BL-001", recent[0].Code)

	_, body = get(t, app, "/api/statistics")
	var st dto.StatisticsDTO
	require.NoError(t, json.Unmarshal([]byte(body), &st))
	assert.True(t, st.HasData)
	assert.Equal(t, 2, st.TotalUnits)
}

func TestReportePDF(t *testing.T) {
	app := buildTestApp(t, catalogCSV)

	resp, body := get(t, app, "/estadisticas/reporte.pdf")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.True(t, strings.HasPrefix(body, "%PDF"))
}
